package sheets

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/trananhtuan/recruitment-backend/internal/config"
)

var (
	// ErrNotConfigured means credentials or the spreadsheet ID are absent.
	// The service stays Uninitialized and every operation is a no-op.
	ErrNotConfigured = errors.New("google sheets is not configured")

	// ErrNotReady is returned by every operation attempted before the
	// service reached Ready. Callers log it; it never fails a registration.
	ErrNotReady = errors.New("google sheets service is not ready")
)

// State is the observable lifecycle of the replica sync service.
type State int32

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is the configuration/state snapshot served by the status endpoint.
type Status struct {
	Initialized    bool   `json:"initialized"`
	State          string `json:"state"`
	SpreadsheetID  string `json:"spreadsheetId"`
	SheetName      string `json:"sheetName"`
	HasCredentials bool   `json:"hasCredentials"`
}

// Service mirrors registrations into a Google Sheets spreadsheet. It is
// constructed by the composition root and initialized explicitly; it never
// initializes itself. The sheet is disposable: every row is rebuildable from
// the primary store via SyncFromSource.
type Service struct {
	mu        sync.RWMutex
	state     State
	api       valuesAPI
	sheetName string

	spreadsheetID  string
	candidates     []string
	hasCredentials bool

	// newAPI is swapped by tests for an in-memory fake.
	newAPI func(ctx context.Context) (valuesAPI, error)
}

func New(cfg *config.Config) *Service {
	s := &Service{
		state:          StateUninitialized,
		spreadsheetID:  cfg.GoogleSheetsID,
		candidates:     cfg.SheetNameCandidates,
		hasCredentials: cfg.GoogleServiceAccountKey != "",
	}
	if len(s.candidates) > 0 {
		s.sheetName = s.candidates[0]
	}
	key := cfg.GoogleServiceAccountKey
	s.newAPI = func(ctx context.Context) (valuesAPI, error) {
		return newGoogleAPI(ctx, key, s.spreadsheetID)
	}
	return s
}

// Initialize authenticates, resolves the target sheet name, and bootstraps
// the header row. Missing configuration leaves the service Uninitialized and
// returns ErrNotConfigured; any other failure moves it to Failed. Either way
// the process keeps running and registration intake is unaffected.
func (s *Service) Initialize(ctx context.Context) error {
	if !s.hasCredentials || s.spreadsheetID == "" {
		slog.Warn("google sheets not configured, replica sync disabled",
			"hasCredentials", s.hasCredentials, "hasSpreadsheetID", s.spreadsheetID != "")
		return ErrNotConfigured
	}

	s.setState(StateInitializing)

	api, err := s.newAPI(ctx)
	if err != nil {
		s.setState(StateFailed)
		return err
	}

	sheetName, err := s.resolveSheetName(ctx, api)
	if err != nil {
		s.setState(StateFailed)
		return err
	}

	s.mu.Lock()
	s.api = api
	s.sheetName = sheetName
	s.mu.Unlock()

	if err := s.ensureHeaders(ctx); err != nil {
		s.setState(StateFailed)
		return err
	}

	s.setState(StateReady)
	slog.Info("google sheets service initialized", "sheet", sheetName)
	return nil
}

// resolveSheetName checks the configured candidate names against the
// spreadsheet's actual sheet titles, case-insensitively and in priority
// order, and falls back to the first sheet when none match.
func (s *Service) resolveSheetName(ctx context.Context, api valuesAPI) (string, error) {
	titles, err := api.sheetTitles(ctx)
	if err != nil {
		return "", err
	}
	if len(titles) == 0 {
		return "", errors.New("spreadsheet has no sheets")
	}

	for _, candidate := range s.candidates {
		for _, title := range titles {
			if strings.EqualFold(title, candidate) {
				return title, nil
			}
		}
	}

	slog.Info("no candidate sheet name matched, using first sheet", "sheet", titles[0])
	return titles[0], nil
}

// ensureHeaders writes the fixed header row when row 1 is empty or absent.
func (s *Service) ensureHeaders(ctx context.Context) error {
	values, err := s.api.readRange(ctx, s.rangeFor("A1:K1"))
	if err != nil {
		return err
	}
	if len(values) > 0 && len(values[0]) > 0 && values[0][0] != "" {
		return nil
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := s.api.updateRange(ctx, s.rangeFor("A1:K1"), [][]interface{}{header}); err != nil {
		return err
	}
	slog.Info("google sheets headers created", "sheet", s.currentSheetName())
	return nil
}

// AddRegistration appends one row to the end of the sheet. Callers treat it
// as fire-and-forget: a failure is logged, never surfaced to the applicant.
func (s *Service) AddRegistration(ctx context.Context, row Row) error {
	if err := s.readyCheck(); err != nil {
		return err
	}
	return s.api.appendRows(ctx, s.rangeFor("A:K"), [][]interface{}{row.values()})
}

// ClearData erases every data row below the header. The header stays.
func (s *Service) ClearData(ctx context.Context) error {
	if err := s.readyCheck(); err != nil {
		return err
	}
	return s.api.clearRange(ctx, s.rangeFor("A2:K"))
}

// BulkSync appends many rows in one batch, preserving input order.
func (s *Service) BulkSync(ctx context.Context, rows []Row) error {
	if err := s.readyCheck(); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = row.values()
	}
	return s.api.appendRows(ctx, s.rangeFor("A:K"), values)
}

// GetAll reads the sheet back as rows, skipping the header.
func (s *Service) GetAll(ctx context.Context) ([]Row, error) {
	if err := s.readyCheck(); err != nil {
		return nil, err
	}
	values, err := s.api.readRange(ctx, s.rangeFor("A:K"))
	if err != nil {
		return nil, err
	}
	if len(values) <= 1 {
		return []Row{}, nil
	}
	rows := make([]Row, 0, len(values)-1)
	for _, v := range values[1:] {
		rows = append(rows, rowFromValues(v))
	}
	return rows, nil
}

// SyncFromSource overwrites the sheet's data rows with the given snapshot.
// Clear and append are two separate calls, so a failure between them leaves
// the sheet cleared but not repopulated; the next run repairs it.
func (s *Service) SyncFromSource(ctx context.Context, rows []Row) error {
	if err := s.ClearData(ctx); err != nil {
		return err
	}
	return s.BulkSync(ctx, rows)
}

func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{
		Initialized:    s.state == StateReady,
		State:          s.state.String(),
		SpreadsheetID:  s.spreadsheetID,
		SheetName:      s.sheetName,
		HasCredentials: s.hasCredentials,
	}
}

func (s *Service) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Service) readyCheck() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateReady {
		return ErrNotReady
	}
	return nil
}

func (s *Service) rangeFor(cells string) string {
	return s.currentSheetName() + "!" + cells
}

func (s *Service) currentSheetName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sheetName
}
