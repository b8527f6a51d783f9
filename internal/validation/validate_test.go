package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/trananhtuan/recruitment-backend/internal/dto"
)

type ValidateSuite struct {
	suite.Suite
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}

func validRequest() *dto.CreateRegistrationRequest {
	return &dto.CreateRegistrationRequest{
		FullName:  "Nguyen Van A",
		Phone:     "0912345678",
		CCCD:      "123456789012",
		Gender:    "Nam",
		BirthDate: "1995-01-01",
		Address:   "Hanoi",
		Factory:   "Van Trung",
	}
}

func (s *ValidateSuite) TestRequiredFields() {
	fields := []struct {
		name  string
		mut   func(*dto.CreateRegistrationRequest)
		field string
	}{
		{"missing fullName", func(r *dto.CreateRegistrationRequest) { r.FullName = "" }, "fullName"},
		{"missing phone", func(r *dto.CreateRegistrationRequest) { r.Phone = "" }, "phone"},
		{"missing cccd", func(r *dto.CreateRegistrationRequest) { r.CCCD = "" }, "cccd"},
		{"missing gender", func(r *dto.CreateRegistrationRequest) { r.Gender = "" }, "gender"},
		{"missing birthDate", func(r *dto.CreateRegistrationRequest) { r.BirthDate = "" }, "birthDate"},
		{"missing address", func(r *dto.CreateRegistrationRequest) { r.Address = "" }, "address"},
		{"missing factory", func(r *dto.CreateRegistrationRequest) { r.Factory = "" }, "factory"},
		{"whitespace only", func(r *dto.CreateRegistrationRequest) { r.Address = "   " }, "address"},
	}

	for _, tc := range fields {
		s.Run(tc.name, func() {
			req := validRequest()
			tc.mut(req)
			sub, verr := Validate(req)
			s.Nil(sub)
			s.Require().NotNil(verr)
			s.Equal(tc.field, verr.Field)
			s.Equal(MsgMissingFields, verr.Message)
		})
	}
}

func (s *ValidateSuite) TestPhoneFormat() {
	for _, phone := range []string{"12345", "012345678a", "09123456789", "091234567"} {
		s.Run(phone, func() {
			req := validRequest()
			req.Phone = phone
			_, verr := Validate(req)
			s.Require().NotNil(verr)
			s.Equal("phone", verr.Field)
			s.Equal(MsgPhoneFormat, verr.Message)
		})
	}
}

func (s *ValidateSuite) TestCCCDFormat() {
	for _, cccd := range []string{"123", "12345678901a", "1234567890123"} {
		s.Run(cccd, func() {
			req := validRequest()
			req.CCCD = cccd
			_, verr := Validate(req)
			s.Require().NotNil(verr)
			s.Equal("cccd", verr.Field)
			s.Equal(MsgCCCDFormat, verr.Message)
		})
	}
}

// Phone format is reported before cccd format when both are malformed.
func (s *ValidateSuite) TestPhoneCheckedBeforeCCCD() {
	req := validRequest()
	req.Phone = "12345"
	req.CCCD = "123"
	_, verr := Validate(req)
	s.Require().NotNil(verr)
	s.Equal("phone", verr.Field)
}

// Missing fields are reported before any format rule runs.
func (s *ValidateSuite) TestMissingFieldBeforeFormat() {
	req := validRequest()
	req.FullName = ""
	req.Phone = "12345"
	_, verr := Validate(req)
	s.Require().NotNil(verr)
	s.Equal("fullName", verr.Field)
	s.Equal(MsgMissingFields, verr.Message)
}

func (s *ValidateSuite) TestDateParsing() {
	s.Run("iso layout", func() {
		sub, verr := Validate(validRequest())
		s.Require().Nil(verr)
		s.Equal(time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC), sub.BirthDate)
	})

	s.Run("vietnamese layout", func() {
		req := validRequest()
		req.BirthDate = "01/01/1995"
		sub, verr := Validate(req)
		s.Require().Nil(verr)
		s.Equal(time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC), sub.BirthDate)
	})

	s.Run("invalid birth date", func() {
		req := validRequest()
		req.BirthDate = "not-a-date"
		_, verr := Validate(req)
		s.Require().NotNil(verr)
		s.Equal(MsgBirthDateFormat, verr.Message)
	})

	s.Run("optional dates absent", func() {
		sub, verr := Validate(validRequest())
		s.Require().Nil(verr)
		s.Nil(sub.CCCDIssueDate)
		s.Nil(sub.CCCDExpiryDate)
	})

	s.Run("optional dates present", func() {
		req := validRequest()
		req.CCCDIssueDate = "2020-03-15"
		req.CCCDExpiryDate = "15/03/2030"
		sub, verr := Validate(req)
		s.Require().Nil(verr)
		s.Require().NotNil(sub.CCCDIssueDate)
		s.Require().NotNil(sub.CCCDExpiryDate)
		s.Equal(2020, sub.CCCDIssueDate.Year())
		s.Equal(2030, sub.CCCDExpiryDate.Year())
	})

	s.Run("invalid optional date", func() {
		req := validRequest()
		req.CCCDIssueDate = "garbage"
		_, verr := Validate(req)
		s.Require().NotNil(verr)
		s.Equal(MsgIssueDateFormat, verr.Message)
	})
}

func (s *ValidateSuite) TestNormalization() {
	req := validRequest()
	req.FullName = "  Nguyen Van A  "
	req.Address = " Hanoi "
	sub, verr := Validate(req)
	s.Require().Nil(verr)
	s.Equal("Nguyen Van A", sub.FullName)
	s.Equal("Hanoi", sub.Address)
	s.Equal(req.Phone, sub.Phone)
	s.Equal(req.CCCD, sub.CCCD)
}
