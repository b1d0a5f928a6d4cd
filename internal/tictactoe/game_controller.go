package tictactoe

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tresenraya-backend/internal/apperror"
	"github.com/rocketscienceinc/tresenraya-backend/internal/entity"
)

type EventType string

const (
	EventState  EventType = "game:state"
	EventResult EventType = "game:result"
)

// Result describes how a round ended.
type Result struct {
	Status entity.Status `json:"status"`
	Winner entity.Mark   `json:"winner,omitempty"`
	Line   []int         `json:"line,omitempty"`
}

// Event is emitted after every accepted transition.
type Event struct {
	Type   EventType    `json:"type"`
	Match  entity.Match `json:"match"`
	Result *Result      `json:"result,omitempty"`
}

// Place marks cell for the player to move and returns the resulting match.
// A rejected placement returns the match unchanged, no events and an apperror sentinel.
func Place(match entity.Match, cell int) (entity.Match, []Event, error) {
	if err := validateMove(match.Game, cell); err != nil {
		return match, nil, fmt.Errorf("invalid turn: %w", err)
	}

	player := match.Game.Turn
	match.Game.Board[cell] = player

	var result *Result

	switch line, won := match.Game.WinLine(player); {
	case won:
		match.Game.Status = entity.StatusWon
		match.Game.Winner = player
		match.Game.WinningLine = []int{line[0], line[1], line[2]}
		match.Scores.RecordWin(player)
		result = &Result{Status: entity.StatusWon, Winner: player, Line: []int{line[0], line[1], line[2]}}
	case match.Game.IsFull():
		match.Game.Status = entity.StatusDraw
		match.Scores.RecordDraw()
		result = &Result{Status: entity.StatusDraw}
	default:
		match.Game.Turn = player.Opponent()
	}

	match.UpdatedAt = time.Now().UTC()

	events := []Event{{Type: EventState, Match: match}}
	if result != nil {
		events = append(events, Event{Type: EventResult, Match: match, Result: result})
	}

	return match, events, nil
}

// Reset starts a new round with X to move. Scores are kept.
func Reset(match entity.Match) (entity.Match, []Event) {
	match.Game = entity.NewGame()
	match.UpdatedAt = time.Now().UTC()

	return match, []Event{{Type: EventState, Match: match}}
}

// validateMove - checks if the move is valid.
func validateMove(game entity.Game, cell int) error {
	if game.IsOver() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if game.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// Subscriber receives the events of a GameController.
type Subscriber func(event Event)

// GameController owns a single match and notifies subscribers about every transition.
// It is not safe for concurrent use.
type GameController struct {
	match       entity.Match
	subscribers []Subscriber
}

func NewGameController(match *entity.Match) *GameController {
	if match == nil {
		match = entity.NewMatch("")
	}

	return &GameController{match: *match}
}

// Subscribe registers fn. Subscribers are called in registration order.
func (that *GameController) Subscribe(fn Subscriber) {
	that.subscribers = append(that.subscribers, fn)
}

func (that *GameController) Match() entity.Match {
	return that.match
}

// MakeTurn places the current player's mark on cell.
func (that *GameController) MakeTurn(cell int) error {
	match, events, err := Place(that.match, cell)
	if err != nil {
		return err
	}

	that.match = match
	that.publish(events)

	return nil
}

// Reset clears the board for a new round.
func (that *GameController) Reset() {
	match, events := Reset(that.match)

	that.match = match
	that.publish(events)
}

func (that *GameController) publish(events []Event) {
	for _, event := range events {
		for _, fn := range that.subscribers {
			fn(event)
		}
	}
}
