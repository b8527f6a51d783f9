package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/trananhtuan/recruitment-backend/internal/dto"
	"github.com/trananhtuan/recruitment-backend/internal/store"
	"github.com/trananhtuan/recruitment-backend/internal/validation"
)

type RegistrationServiceSuite struct {
	suite.Suite
	store   *store.InMemoryStore
	service *RegistrationService
	ctx     context.Context
}

func TestRegistrationServiceSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceSuite))
}

func (s *RegistrationServiceSuite) SetupTest() {
	s.store = store.NewInMemoryStore()
	s.service = NewRegistrationService(s.store)
	s.ctx = context.Background()
}

func (s *RegistrationServiceSuite) request(phone, cccd string) *dto.CreateRegistrationRequest {
	return &dto.CreateRegistrationRequest{
		FullName:  "Nguyen Van A",
		Phone:     phone,
		CCCD:      cccd,
		Gender:    "Nam",
		BirthDate: "1995-01-01",
		Address:   "Hanoi",
		Factory:   "Van Trung",
	}
}

func (s *RegistrationServiceSuite) TestCreateSuccess() {
	reg, err := s.service.Create(s.ctx, s.request("0912345678", "123456789012"), "203.0.113.9", "test-agent")
	s.Require().NoError(err)
	s.Positive(reg.ID)
	s.Equal("0912345678", reg.Phone)
	s.Equal("203.0.113.9", reg.IPAddress)
	s.Equal("test-agent", reg.UserAgent)
	s.False(reg.CreatedAt.IsZero())
}

func (s *RegistrationServiceSuite) TestCreateAssignsIncreasingIDs() {
	first, err := s.service.Create(s.ctx, s.request("0911111111", "100000000001"), "", "")
	s.Require().NoError(err)
	second, err := s.service.Create(s.ctx, s.request("0922222222", "100000000002"), "", "")
	s.Require().NoError(err)

	s.Greater(second.ID, first.ID)
	s.False(second.CreatedAt.Before(first.CreatedAt))
}

func (s *RegistrationServiceSuite) TestValidationFailureBeforeStoreAccess() {
	req := s.request("12345", "123456789012")
	_, err := s.service.Create(s.ctx, req, "", "")

	var verr *validation.Error
	s.Require().ErrorAs(err, &verr)
	s.Equal(validation.MsgPhoneFormat, verr.Message)

	count, cerr := s.store.Count(s.ctx)
	s.Require().NoError(cerr)
	s.Zero(count)
}

func (s *RegistrationServiceSuite) TestDuplicatePhone() {
	_, err := s.service.Create(s.ctx, s.request("0987654321", "123456789012"), "", "")
	s.Require().NoError(err)

	_, err = s.service.Create(s.ctx, s.request("0987654321", "999999999999"), "", "")
	s.ErrorIs(err, ErrPhoneExists)
	s.True(IsConflict(err))

	count, cerr := s.store.Count(s.ctx)
	s.Require().NoError(cerr)
	s.EqualValues(1, count)
}

func (s *RegistrationServiceSuite) TestDuplicateCCCD() {
	_, err := s.service.Create(s.ctx, s.request("0987654321", "123456789012"), "", "")
	s.Require().NoError(err)

	_, err = s.service.Create(s.ctx, s.request("0900000000", "123456789012"), "", "")
	s.ErrorIs(err, ErrCCCDExists)

	count, cerr := s.store.Count(s.ctx)
	s.Require().NoError(cerr)
	s.EqualValues(1, count)
}

// Phone conflict wins when both fields collide with an existing row.
func (s *RegistrationServiceSuite) TestPhoneConflictReportedFirst() {
	_, err := s.service.Create(s.ctx, s.request("0987654321", "123456789012"), "", "")
	s.Require().NoError(err)

	_, err = s.service.Create(s.ctx, s.request("0987654321", "123456789012"), "", "")
	s.ErrorIs(err, ErrPhoneExists)
}

func (s *RegistrationServiceSuite) TestListAllNewestFirst() {
	_, err := s.service.Create(s.ctx, s.request("0911111111", "100000000001"), "", "")
	s.Require().NoError(err)
	_, err = s.service.Create(s.ctx, s.request("0922222222", "100000000002"), "", "")
	s.Require().NoError(err)

	regs, err := s.service.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(regs, 2)
	s.False(regs[0].CreatedAt.Before(regs[1].CreatedAt))
}

func (s *RegistrationServiceSuite) TestStatistics() {
	_, err := s.service.Create(s.ctx, s.request("0911111111", "100000000001"), "", "")
	s.Require().NoError(err)

	req := s.request("0922222222", "100000000002")
	req.Gender = "Nữ"
	req.Factory = "Quang Chau"
	_, err = s.service.Create(s.ctx, req, "", "")
	s.Require().NoError(err)

	stats, err := s.service.Statistics(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(2, stats.Total)
	s.EqualValues(1, stats.ByFactory["Van Trung"])
	s.EqualValues(1, stats.ByFactory["Quang Chau"])
	s.EqualValues(1, stats.ByGender["Nam"])
	s.EqualValues(1, stats.ByGender["Nữ"])
	s.EqualValues(2, stats.Recent7Days)
}
