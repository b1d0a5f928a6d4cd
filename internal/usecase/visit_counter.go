package usecase

import (
	"context"
	"log/slog"
)

type visitRepo interface {
	Hit(ctx context.Context) (int64, error)
}

// VisitCounter counts page visits. Failures are logged and reported as zero visits.
type VisitCounter struct {
	logger    *slog.Logger
	visitRepo visitRepo
}

func NewVisitCounter(logger *slog.Logger, visitRepo visitRepo) *VisitCounter {
	return &VisitCounter{
		logger:    logger.With("component", "visit_counter"),
		visitRepo: visitRepo,
	}
}

// Visit returns the number of visits before this one and records this one.
func (that *VisitCounter) Visit(ctx context.Context) int64 {
	total, err := that.visitRepo.Hit(ctx)
	if err != nil {
		that.logger.Error("failed to count visit", "error", err)
		return 0
	}

	return total
}
