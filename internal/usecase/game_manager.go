package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tresenraya-backend/internal/entity"
	"github.com/rocketscienceinc/tresenraya-backend/internal/repository"
	"github.com/rocketscienceinc/tresenraya-backend/internal/tictactoe"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

// Publisher delivers game events to everything attached to a session.
type Publisher interface {
	Publish(ctx context.Context, sessionID string, events []tictactoe.Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, []tictactoe.Event) {}

// GameManager keeps one match per session and serializes transitions on it.
type GameManager struct {
	logger    *slog.Logger
	matchRepo matchRepo

	mu        sync.Mutex
	publisher Publisher
}

func NewGameManager(logger *slog.Logger, matchRepo matchRepo) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		matchRepo: matchRepo,
		publisher: noopPublisher{},
	}
}

// SetPublisher attaches the event sink. A nil publisher drops events.
func (that *GameManager) SetPublisher(publisher Publisher) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if publisher == nil {
		publisher = noopPublisher{}
	}
	that.publisher = publisher
}

// NewSessionID - generates a new unique session ID.
func NewSessionID() string {
	return uuid.NewString()
}

// GetOrCreateMatch returns the session's match, creating it on first use.
// An empty sessionID gets a freshly generated one.
func (that *GameManager) GetOrCreateMatch(ctx context.Context, sessionID string) (*entity.Match, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.getOrCreateMatch(ctx, sessionID)
}

// MakeTurn places the current player's mark on cell. Rejected moves return the
// unchanged match together with an error matched by apperror.IsInvalidMove.
func (that *GameManager) MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Match, error) {
	log := that.logger.With("method", "MakeTurn", "session", sessionID)

	that.mu.Lock()
	defer that.mu.Unlock()

	match, err := that.getOrCreateMatch(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated, events, err := tictactoe.Place(*match, cell)
	if err != nil {
		log.Debug("move ignored", "cell", cell, "reason", err)
		return match, err
	}

	if err = that.updateMatch(ctx, &updated); err != nil {
		return nil, err
	}

	if updated.Game.IsOver() {
		log.Info("round finished", "status", updated.Game.Status, "winner", updated.Game.Winner)
	}

	that.publisher.Publish(ctx, sessionID, events)

	return &updated, nil
}

// ResetRound clears the board and keeps the scores.
func (that *GameManager) ResetRound(ctx context.Context, sessionID string) (*entity.Match, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	match, err := that.getOrCreateMatch(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated, events := tictactoe.Reset(*match)
	if err = that.updateMatch(ctx, &updated); err != nil {
		return nil, err
	}

	that.publisher.Publish(ctx, sessionID, events)

	return &updated, nil
}

// ResetScores starts the session over with an empty board and a zeroed scoreboard.
func (that *GameManager) ResetScores(ctx context.Context, sessionID string) (*entity.Match, error) {
	log := that.logger.With("method", "ResetScores", "session", sessionID)

	that.mu.Lock()
	defer that.mu.Unlock()

	if sessionID == "" {
		return that.createMatch(ctx, NewSessionID())
	}

	if err := that.matchRepo.DeleteByID(ctx, sessionID); err != nil && !errors.Is(err, repository.ErrMatchNotFound) {
		return nil, fmt.Errorf("failed to delete match: %w", err)
	}

	match, err := that.createMatch(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	_, events := tictactoe.Reset(*match)
	that.publisher.Publish(ctx, sessionID, events)

	log.Info("scores reset")

	return match, nil
}

func (that *GameManager) getOrCreateMatch(ctx context.Context, sessionID string) (*entity.Match, error) {
	if sessionID == "" {
		return that.createMatch(ctx, NewSessionID())
	}

	match, err := that.matchRepo.GetByID(ctx, sessionID)
	if errors.Is(err, repository.ErrMatchNotFound) {
		return that.createMatch(ctx, sessionID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

func (that *GameManager) createMatch(ctx context.Context, sessionID string) (*entity.Match, error) {
	match := entity.NewMatch(sessionID)

	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	that.logger.Info("match created", "session", sessionID)

	return match, nil
}

func (that *GameManager) updateMatch(ctx context.Context, match *entity.Match) error {
	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}

	return nil
}
