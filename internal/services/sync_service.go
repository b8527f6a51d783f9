package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trananhtuan/recruitment-backend/internal/sheets"
	"github.com/trananhtuan/recruitment-backend/internal/store"
)

// SheetsSyncer is the slice of the sheets service the reconciliation job
// uses.
type SheetsSyncer interface {
	SyncFromSource(ctx context.Context, rows []sheets.Row) error
}

// SyncService rebuilds the replica sheet from the primary store: a full
// snapshot, oldest first, overwriting whatever the sheet held before.
type SyncService struct {
	store  store.RegistrationStore
	sheets SheetsSyncer
}

func NewSyncService(s store.RegistrationStore, syncer SheetsSyncer) *SyncService {
	return &SyncService{store: s, sheets: syncer}
}

// Run performs one reconciliation and returns the number of rows synced.
// It is fail-stop: an error midway leaves the sheet cleared but not fully
// repopulated, which the next successful run repairs.
func (s *SyncService) Run(ctx context.Context) (int, error) {
	regs, err := s.store.ListAll(ctx, store.OrderOldestFirst)
	if err != nil {
		return 0, fmt.Errorf("failed to load registrations for sync: %w", err)
	}

	rows := make([]sheets.Row, len(regs))
	for i, reg := range regs {
		rows[i] = sheets.RowFromRegistration(reg)
	}

	if err := s.sheets.SyncFromSource(ctx, rows); err != nil {
		return 0, err
	}

	slog.Info("google sheets reconciliation completed", "count", len(rows))
	return len(rows), nil
}
