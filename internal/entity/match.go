package entity

import "time"

// Scoreboard counts finished rounds. It only ever grows until a full reset.
type Scoreboard struct {
	X     int `json:"x"`
	O     int `json:"o"`
	Draws int `json:"draws"`
}

func (that *Scoreboard) RecordWin(mark Mark) {
	switch mark {
	case PlayerX:
		that.X++
	case PlayerO:
		that.O++
	}
}

func (that *Scoreboard) RecordDraw() {
	that.Draws++
}

func (that Scoreboard) Wins(mark Mark) int {
	switch mark {
	case PlayerX:
		return that.X
	case PlayerO:
		return that.O
	default:
		return 0
	}
}

// Match is the current round of a session together with its cumulative scores.
type Match struct {
	ID        string     `json:"id"`
	Game      Game       `json:"game"`
	Scores    Scoreboard `json:"scores"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewMatch(id string) *Match {
	return &Match{
		ID:        id,
		Game:      NewGame(),
		UpdatedAt: time.Now().UTC(),
	}
}
