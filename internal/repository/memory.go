package repository

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rocketscienceinc/tresenraya-backend/internal/entity"
)

type memoryMatch struct {
	mu      sync.RWMutex
	matches map[string]entity.Match
}

// NewMemoryMatchRepository keeps matches for the lifetime of the process.
func NewMemoryMatchRepository() MatchRepository {
	return &memoryMatch{
		matches: make(map[string]entity.Match),
	}
}

func (that *memoryMatch) CreateOrUpdate(_ context.Context, match *entity.Match) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.matches[match.ID] = copyMatch(*match)

	return nil
}

func (that *memoryMatch) GetByID(_ context.Context, id string) (*entity.Match, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	match, ok := that.matches[id]
	if !ok {
		return nil, ErrMatchNotFound
	}

	match = copyMatch(match)

	return &match, nil
}

func (that *memoryMatch) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.matches[id]; !ok {
		return ErrMatchNotFound
	}

	delete(that.matches, id)

	return nil
}

// copyMatch detaches the winning line from the caller's slice.
func copyMatch(match entity.Match) entity.Match {
	if match.Game.WinningLine != nil {
		match.Game.WinningLine = append([]int(nil), match.Game.WinningLine...)
	}
	return match
}

type memoryVisit struct {
	total atomic.Int64
}

func NewMemoryVisitRepository() VisitRepository {
	return &memoryVisit{}
}

func (that *memoryVisit) Hit(_ context.Context) (int64, error) {
	return that.total.Add(1) - 1, nil
}

func (that *memoryVisit) Get(_ context.Context) (int64, error) {
	return that.total.Load(), nil
}
