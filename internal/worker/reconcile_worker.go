package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thakur-sujal/ERP-Portal/internal/repository"
)

const ReconcileInterval = 5 * time.Minute

// ReconcileWorker periodically re-derives each course's total_classes_held
// from the attendance ledger. The server recounts after every marking batch,
// so this only catches drift from out-of-band changes such as raw record
// deletion or a crash between write and recount.
type ReconcileWorker struct {
	courses *repository.CourseRepository
	log     zerolog.Logger
}

// NewReconcileWorker creates a new ReconcileWorker.
func NewReconcileWorker(courses *repository.CourseRepository, log zerolog.Logger) *ReconcileWorker {
	return &ReconcileWorker{
		courses: courses,
		log:     log.With().Str("component", "reconcile_worker").Logger(),
	}
}

// Start runs the reconcile loop until the context is cancelled.
func (w *ReconcileWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", ReconcileInterval).Msg("ReconcileWorker started")

	ticker := time.NewTicker(ReconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("ReconcileWorker stopped")
			return
		case <-ticker.C:
			w.reconcile(ctx)
		}
	}
}

func (w *ReconcileWorker) reconcile(ctx context.Context) {
	ids, err := w.courses.DriftedTotals(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("Drift scan failed")
		return
	}
	if len(ids) == 0 {
		return
	}

	fixed := 0
	for _, id := range ids {
		if _, err := w.courses.RecountTotalClasses(ctx, id); err != nil {
			w.log.Error().Err(err).Int("course_id", id).Msg("Recount failed")
			continue
		}
		fixed++
	}
	w.log.Info().Int("drifted", len(ids)).Int("fixed", fixed).Msg("Class count reconciliation done")
}
