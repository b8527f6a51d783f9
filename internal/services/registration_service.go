package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trananhtuan/recruitment-backend/internal/dto"
	"github.com/trananhtuan/recruitment-backend/internal/models"
	"github.com/trananhtuan/recruitment-backend/internal/store"
	"github.com/trananhtuan/recruitment-backend/internal/validation"
)

var (
	ErrPhoneExists = errors.New("Số điện thoại này đã được đăng ký trước đó")
	ErrCCCDExists  = errors.New("Số CCCD này đã được đăng ký trước đó")
)

type RegistrationService struct {
	store store.RegistrationStore
}

func NewRegistrationService(s store.RegistrationStore) *RegistrationService {
	return &RegistrationService{store: s}
}

// Create validates a submission, checks for duplicates, and persists it.
// The pre-insert duplicate check is a fast path for the form only; two
// concurrent submissions can both pass it, so Insert maps the unique-index
// violation onto the same conflict errors.
func (s *RegistrationService) Create(ctx context.Context, req *dto.CreateRegistrationRequest, ip, userAgent string) (*models.Registration, error) {
	sub, verr := validation.Validate(req)
	if verr != nil {
		return nil, verr
	}

	// Phone is checked before cccd; only the first conflict is reported.
	if _, err := s.store.FindByPhone(ctx, sub.Phone); err == nil {
		return nil, ErrPhoneExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("phone lookup failed: %w", err)
	}
	if _, err := s.store.FindByCCCD(ctx, sub.CCCD); err == nil {
		return nil, ErrCCCDExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("cccd lookup failed: %w", err)
	}

	reg := &models.Registration{
		FullName:       sub.FullName,
		Phone:          sub.Phone,
		CCCD:           sub.CCCD,
		Gender:         sub.Gender,
		BirthDate:      sub.BirthDate,
		Address:        sub.Address,
		CCCDIssueDate:  sub.CCCDIssueDate,
		CCCDExpiryDate: sub.CCCDExpiryDate,
		Factory:        sub.Factory,
		IPAddress:      ip,
		UserAgent:      userAgent,
	}

	if err := s.store.Insert(ctx, reg); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicatePhone):
			return nil, ErrPhoneExists
		case errors.Is(err, store.ErrDuplicateCCCD):
			return nil, ErrCCCDExists
		default:
			return nil, fmt.Errorf("failed to insert registration: %w", err)
		}
	}
	return reg, nil
}

// ListAll returns every registration newest first, for the admin panel.
func (s *RegistrationService) ListAll(ctx context.Context) ([]models.Registration, error) {
	return s.store.ListAll(ctx, store.OrderNewestFirst)
}

func (s *RegistrationService) Statistics(ctx context.Context) (*dto.StatisticsData, error) {
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count registrations: %w", err)
	}
	byFactory, err := s.store.CountByFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count by factory: %w", err)
	}
	byGender, err := s.store.CountByGender(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count by gender: %w", err)
	}
	recent, err := s.store.CountSince(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent registrations: %w", err)
	}

	return &dto.StatisticsData{
		Total:       total,
		ByFactory:   byFactory,
		ByGender:    byGender,
		Recent7Days: recent,
	}, nil
}

// IsConflict reports whether err is a duplicate-phone or duplicate-cccd
// conflict, regardless of whether the pre-check or the unique index found it.
func IsConflict(err error) bool {
	return errors.Is(err, ErrPhoneExists) || errors.Is(err, ErrCCCDExists)
}
