package replication

import (
	"context"
	"log/slog"
	"sync"

	"github.com/trananhtuan/recruitment-backend/internal/models"
	"github.com/trananhtuan/recruitment-backend/internal/sheets"
)

// Sink receives replica rows. Implemented by the Google Sheets service.
type Sink interface {
	AddRegistration(ctx context.Context, row sheets.Row) error
}

// Replicator is the asynchronous boundary between registration intake and
// the replica sheet. Enqueue never blocks and never fails the caller:
// delivery is at-most-once, failures are logged and dropped. There is no
// retry and no durable queue; the reconciliation endpoint repairs the sheet.
type Replicator struct {
	sink  Sink
	queue chan models.Registration
	wg    sync.WaitGroup
}

func New(sink Sink, queueSize int) *Replicator {
	r := &Replicator{
		sink:  sink,
		queue: make(chan models.Registration, queueSize),
	}
	r.wg.Add(1)
	go r.worker()
	return r
}

// Enqueue schedules one registration for replication. When the queue is full
// the row is dropped with a log entry rather than blocking the request.
func (r *Replicator) Enqueue(reg models.Registration) {
	select {
	case r.queue <- reg:
	default:
		slog.Error("replication queue full, dropping registration",
			"action", "replicate", "registration_id", reg.ID)
	}
}

func (r *Replicator) worker() {
	defer r.wg.Done()
	for reg := range r.queue {
		row := sheets.RowFromRegistration(reg)
		if err := r.sink.AddRegistration(context.Background(), row); err != nil {
			slog.Error("failed to replicate registration to google sheets",
				"action", "replicate", "registration_id", reg.ID, "error", err)
			continue
		}
		slog.Info("registration replicated to google sheets",
			"registration_id", reg.ID, "full_name", reg.FullName)
	}
}

// Stop drains the queue and waits for the worker to finish. Enqueue must not
// be called after Stop.
func (r *Replicator) Stop() {
	close(r.queue)
	r.wg.Wait()
}
