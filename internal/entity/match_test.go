package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreboard(t *testing.T) {
	// Given: an empty scoreboard
	var scores Scoreboard

	// When: two wins for X, one for O and a draw are recorded
	scores.RecordWin(PlayerX)
	scores.RecordWin(PlayerX)
	scores.RecordWin(PlayerO)
	scores.RecordWin(EmptyCell)
	scores.RecordDraw()

	// Then: each counter reflects its own results
	assert.Equal(t, Scoreboard{X: 2, O: 1, Draws: 1}, scores)
	assert.Equal(t, 2, scores.Wins(PlayerX))
	assert.Equal(t, 1, scores.Wins(PlayerO))
	assert.Zero(t, scores.Wins(EmptyCell))
}

func TestNewMatch(t *testing.T) {
	match := NewMatch("123")

	assert.Equal(t, "123", match.ID)
	assert.Equal(t, NewGame(), match.Game)
	assert.Equal(t, Scoreboard{}, match.Scores)
	assert.False(t, match.UpdatedAt.IsZero())
}

func TestRoster_ByMark(t *testing.T) {
	roster := DefaultRoster()

	assert.Equal(t, "Lavanda", roster.ByMark(PlayerX).Name)
	assert.Equal(t, "Píldorín", roster.ByMark(PlayerO).Name)
	assert.Equal(t, PlayerO, roster.ByMark(PlayerO).Mark)
}
