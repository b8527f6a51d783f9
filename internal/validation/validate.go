package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/trananhtuan/recruitment-backend/internal/dto"
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	cccdPattern  = regexp.MustCompile(`^\d{12}$`)
)

// Messages shown to applicants. The public form is Vietnamese-only.
const (
	MsgMissingFields    = "Vui lòng điền đầy đủ thông tin bắt buộc"
	MsgPhoneFormat      = "Số điện thoại phải có 10 chữ số"
	MsgCCCDFormat       = "Số CCCD phải có 12 chữ số"
	MsgBirthDateFormat  = "Ngày sinh không hợp lệ"
	MsgIssueDateFormat  = "Ngày cấp CCCD không hợp lệ"
	MsgExpiryDateFormat = "Ngày hết hạn CCCD không hợp lệ"
)

// Error is a user-correctable validation failure. Message is already
// localized for the form.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Submission is a validated and normalized registration request, ready for
// persistence.
type Submission struct {
	FullName       string
	Phone          string
	CCCD           string
	Gender         string
	BirthDate      time.Time
	Address        string
	CCCDIssueDate  *time.Time
	CCCDExpiryDate *time.Time
	Factory        string
}

// Validate checks a raw submission in fixed priority order: required fields
// first, then phone format, then cccd format, then date parsing. It stops at
// the first failing rule. No side effects.
func Validate(req *dto.CreateRegistrationRequest) (*Submission, *Error) {
	required := []struct {
		field string
		value string
	}{
		{"fullName", req.FullName},
		{"phone", req.Phone},
		{"cccd", req.CCCD},
		{"gender", req.Gender},
		{"birthDate", req.BirthDate},
		{"address", req.Address},
		{"factory", req.Factory},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, &Error{Field: r.field, Message: MsgMissingFields}
		}
	}

	if !phonePattern.MatchString(req.Phone) {
		return nil, &Error{Field: "phone", Message: MsgPhoneFormat}
	}
	if !cccdPattern.MatchString(req.CCCD) {
		return nil, &Error{Field: "cccd", Message: MsgCCCDFormat}
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, &Error{Field: "birthDate", Message: MsgBirthDateFormat}
	}

	issueDate, err := parseOptionalDate(req.CCCDIssueDate)
	if err != nil {
		return nil, &Error{Field: "cccdIssueDate", Message: MsgIssueDateFormat}
	}
	expiryDate, err := parseOptionalDate(req.CCCDExpiryDate)
	if err != nil {
		return nil, &Error{Field: "cccdExpiryDate", Message: MsgExpiryDateFormat}
	}

	return &Submission{
		FullName:       strings.TrimSpace(req.FullName),
		Phone:          req.Phone,
		CCCD:           req.CCCD,
		Gender:         req.Gender,
		BirthDate:      birthDate,
		Address:        strings.TrimSpace(req.Address),
		CCCDIssueDate:  issueDate,
		CCCDExpiryDate: expiryDate,
		Factory:        req.Factory,
	}, nil
}

// The form normally sends ISO dates; older clients send dd/mm/yyyy.
var dateLayouts = []string{"2006-01-02", "02/01/2006"}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
