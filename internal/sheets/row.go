package sheets

import (
	"strconv"
	"time"

	"github.com/trananhtuan/recruitment-backend/internal/models"
)

// Headers is the fixed first row of the replica sheet. The column order is
// the contract with the HR staff who filter and export the sheet; do not
// reorder.
var Headers = []string{
	"ID",
	"Thời gian đăng ký",
	"Họ và Tên",
	"Số điện thoại",
	"Số CCCD",
	"Giới tính",
	"Ngày sinh",
	"Địa chỉ thường trú",
	"Nhà máy ứng tuyển",
	"Ngày cấp CCCD",
	"Ngày hết hạn CCCD",
}

const (
	dateFormat     = "02/01/2006"
	dateTimeFormat = "02/01/2006 15:04:05"
)

// Registrations are timestamped for the sheet in local factory time.
var localZone = loadLocalZone()

func loadLocalZone() *time.Location {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}

// Row is the positional projection of a Registration into the 11 sheet
// columns A-K. All values are already formatted as display text.
type Row struct {
	ID             string
	RegisteredAt   string
	FullName       string
	Phone          string
	CCCD           string
	Gender         string
	BirthDate      string
	Address        string
	Factory        string
	CCCDIssueDate  string
	CCCDExpiryDate string
}

// RowFromRegistration projects a stored registration into its replica row.
func RowFromRegistration(reg models.Registration) Row {
	return Row{
		ID:             strconv.FormatUint(uint64(reg.ID), 10),
		RegisteredAt:   reg.CreatedAt.In(localZone).Format(dateTimeFormat),
		FullName:       reg.FullName,
		Phone:          reg.Phone,
		CCCD:           reg.CCCD,
		Gender:         reg.Gender,
		BirthDate:      reg.BirthDate.Format(dateFormat),
		Address:        reg.Address,
		Factory:        reg.Factory,
		CCCDIssueDate:  formatOptionalDate(reg.CCCDIssueDate),
		CCCDExpiryDate: formatOptionalDate(reg.CCCDExpiryDate),
	}
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateFormat)
}

func (r Row) values() []interface{} {
	return []interface{}{
		r.ID,
		r.RegisteredAt,
		r.FullName,
		r.Phone,
		r.CCCD,
		r.Gender,
		r.BirthDate,
		r.Address,
		r.Factory,
		r.CCCDIssueDate,
		r.CCCDExpiryDate,
	}
}

func rowFromValues(values []interface{}) Row {
	cell := func(i int) string {
		if i >= len(values) {
			return ""
		}
		s, _ := values[i].(string)
		return s
	}
	return Row{
		ID:             cell(0),
		RegisteredAt:   cell(1),
		FullName:       cell(2),
		Phone:          cell(3),
		CCCD:           cell(4),
		Gender:         cell(5),
		BirthDate:      cell(6),
		Address:        cell(7),
		Factory:        cell(8),
		CCCDIssueDate:  cell(9),
		CCCDExpiryDate: cell(10),
	}
}
