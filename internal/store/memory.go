package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/trananhtuan/recruitment-backend/internal/models"
)

// InMemoryStore is a RegistrationStore for unit tests and local development
// without a database. It enforces the same uniqueness rules as the Postgres
// unique indexes.
type InMemoryStore struct {
	mu     sync.RWMutex
	nextID uint
	regs   []models.Registration
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{nextID: 1}
}

func (s *InMemoryStore) Insert(_ context.Context, reg *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.regs {
		if existing.Phone == reg.Phone {
			return ErrDuplicatePhone
		}
	}
	for _, existing := range s.regs {
		if existing.CCCD == reg.CCCD {
			return ErrDuplicateCCCD
		}
	}

	reg.ID = s.nextID
	s.nextID++
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = time.Now()
	}
	s.regs = append(s.regs, *reg)
	return nil
}

func (s *InMemoryStore) ListAll(_ context.Context, order ListOrder) ([]models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Registration, len(s.regs))
	copy(out, s.regs)
	sort.SliceStable(out, func(i, j int) bool {
		if order == OrderNewestFirst {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InMemoryStore) FindByPhone(_ context.Context, phone string) (*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, reg := range s.regs {
		if reg.Phone == phone {
			found := reg
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryStore) FindByCCCD(_ context.Context, cccd string) (*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, reg := range s.regs {
		if reg.CCCD == cccd {
			found := reg
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.regs)), nil
}

func (s *InMemoryStore) CountByFactory(_ context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int64)
	for _, reg := range s.regs {
		out[reg.Factory]++
	}
	return out, nil
}

func (s *InMemoryStore) CountByGender(_ context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int64)
	for _, reg := range s.regs {
		out[reg.Gender]++
	}
	return out, nil
}

func (s *InMemoryStore) CountSince(_ context.Context, since time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for _, reg := range s.regs {
		if !reg.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}
