package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/trananhtuan/recruitment-backend/internal/models"
)

// GormStore is the PostgreSQL-backed RegistrationStore. It relies on GORM's
// error translation (TranslateError) to recognize unique-index violations.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Insert(ctx context.Context, reg *models.Registration) error {
	if err := s.db.WithContext(ctx).Create(reg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.classifyDuplicate(err)
		}
		return err
	}
	return nil
}

// classifyDuplicate decides which unique index was hit. The driver message
// names the index; when it doesn't, phone is reported (it is checked first
// everywhere else too).
func (s *GormStore) classifyDuplicate(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "cccd") {
		return ErrDuplicateCCCD
	}
	return ErrDuplicatePhone
}

func (s *GormStore) ListAll(ctx context.Context, order ListOrder) ([]models.Registration, error) {
	var regs []models.Registration
	if err := s.db.WithContext(ctx).Order(string(order)).Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (s *GormStore) FindByPhone(ctx context.Context, phone string) (*models.Registration, error) {
	return s.findBy(ctx, "phone = ?", phone)
}

func (s *GormStore) FindByCCCD(ctx context.Context, cccd string) (*models.Registration, error) {
	return s.findBy(ctx, "cccd = ?", cccd)
}

func (s *GormStore) findBy(ctx context.Context, query string, arg string) (*models.Registration, error) {
	var reg models.Registration
	err := s.db.WithContext(ctx).Where(query, arg).First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (s *GormStore) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.Registration{}).Count(&total).Error
	return total, err
}

func (s *GormStore) CountByFactory(ctx context.Context) (map[string]int64, error) {
	return s.countGrouped(ctx, "factory")
}

func (s *GormStore) CountByGender(ctx context.Context) (map[string]int64, error) {
	return s.countGrouped(ctx, "gender")
}

type groupCount struct {
	Key   string
	Count int64
}

func (s *GormStore) countGrouped(ctx context.Context, column string) (map[string]int64, error) {
	var rows []groupCount
	err := s.db.WithContext(ctx).Model(&models.Registration{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Count
	}
	return out, nil
}

func (s *GormStore) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Registration{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
