package store

import (
	"context"
	"errors"
	"time"

	"github.com/trananhtuan/recruitment-backend/internal/models"
)

var (
	// ErrDuplicatePhone and ErrDuplicateCCCD surface unique-index violations
	// so the service layer can map them onto its conflict taxonomy.
	ErrDuplicatePhone = errors.New("registration with this phone already exists")
	ErrDuplicateCCCD  = errors.New("registration with this cccd already exists")

	ErrNotFound = errors.New("registration not found")
)

// ListOrder selects the created_at ordering for ListAll.
type ListOrder string

const (
	OrderOldestFirst ListOrder = "created_at ASC"
	OrderNewestFirst ListOrder = "created_at DESC"
)

// RegistrationStore owns the canonical registration records. Insert assigns
// id and created_at. Rows are never updated or deleted.
type RegistrationStore interface {
	Insert(ctx context.Context, reg *models.Registration) error
	ListAll(ctx context.Context, order ListOrder) ([]models.Registration, error)
	FindByPhone(ctx context.Context, phone string) (*models.Registration, error)
	FindByCCCD(ctx context.Context, cccd string) (*models.Registration, error)

	Count(ctx context.Context) (int64, error)
	CountByFactory(ctx context.Context) (map[string]int64, error)
	CountByGender(ctx context.Context) (map[string]int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
