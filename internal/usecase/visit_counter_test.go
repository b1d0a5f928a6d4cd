package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tresenraya-backend/internal/repository"
)

type failingVisitRepo struct{}

func (failingVisitRepo) Hit(context.Context) (int64, error) {
	return 0, errRedisDown
}

func TestVisitCounter_Visit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("Reports the count before the visit", func(t *testing.T) {
		counter := NewVisitCounter(logger, repository.NewMemoryVisitRepository())

		assert.Equal(t, int64(0), counter.Visit(ctx))
		assert.Equal(t, int64(1), counter.Visit(ctx))
		assert.Equal(t, int64(2), counter.Visit(ctx))
	})

	t.Run("Reports zero when the storage fails", func(t *testing.T) {
		counter := NewVisitCounter(logger, failingVisitRepo{})

		assert.Zero(t, counter.Visit(ctx))
	})
}
