package models

import "time"

// Registration is the canonical record of one job-candidate submission.
// Rows are append-only: this subsystem never updates or deletes them.
// Uniqueness of phone and cccd is enforced by the database indexes; the
// pre-insert duplicate check in the service layer is advisory only.
type Registration struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	FullName       string     `gorm:"size:255;not null" json:"fullName"`
	Phone          string     `gorm:"size:10;not null;uniqueIndex:idx_registrations_phone" json:"phone"`
	CCCD           string     `gorm:"column:cccd;size:12;not null;uniqueIndex:idx_registrations_cccd" json:"cccd"`
	Gender         string     `gorm:"size:20;not null" json:"gender"`
	BirthDate      time.Time  `gorm:"type:date;not null" json:"birthDate"`
	Address        string     `gorm:"size:500;not null" json:"address"`
	CCCDIssueDate  *time.Time `gorm:"column:cccd_issue_date;type:date" json:"cccdIssueDate,omitempty"`
	CCCDExpiryDate *time.Time `gorm:"column:cccd_expiry_date;type:date" json:"cccdExpiryDate,omitempty"`
	Factory        string     `gorm:"size:100;not null" json:"factory"`
	IPAddress      string     `gorm:"size:45" json:"-"`
	UserAgent      string     `gorm:"size:512" json:"-"`
	CreatedAt      time.Time  `json:"createdAt"`
}
