package presenter

import (
	"time"

	"github.com/rocketscienceinc/tresenraya-backend/internal/entity"
	"github.com/rocketscienceinc/tresenraya-backend/internal/tictactoe"
)

const (
	winDialogDelay  = 600 * time.Millisecond
	drawDialogDelay = 300 * time.Millisecond

	drawTitle   = "¡Empate!"
	drawMessage = "¡La batalla continúa!"
)

// TurnIndicator shows who is to move.
type TurnIndicator struct {
	Mark  entity.Mark `json:"mark"`
	Name  string      `json:"name"`
	Icon  string      `json:"icon"`
	Color string      `json:"color"`
}

// Dialog is the content of the result modal. DelayMS is how long clients wait before showing it.
type Dialog struct {
	Status  entity.Status `json:"status"`
	Title   string        `json:"title"`
	Message string        `json:"message"`
	Image   string        `json:"image,omitempty"`
	Alt     string        `json:"alt,omitempty"`
	Line    []int         `json:"line,omitempty"`
	DelayMS int64         `json:"delay_ms"`
}

// GameView is what presentation layers render for a match.
type GameView struct {
	Match  entity.Match  `json:"match"`
	Turn   TurnIndicator `json:"turn"`
	Dialog *Dialog       `json:"dialog,omitempty"`
}

type Presenter struct {
	roster entity.Roster
}

func New(roster entity.Roster) *Presenter {
	return &Presenter{roster: roster}
}

func (that *Presenter) Roster() entity.Roster {
	return that.roster
}

func (that *Presenter) Turn(game entity.Game) TurnIndicator {
	player := that.roster.ByMark(game.Turn)

	return TurnIndicator{
		Mark:  player.Mark,
		Name:  player.Name,
		Icon:  player.Icon,
		Color: player.Color,
	}
}

// Dialog builds the result modal for a finished round.
func (that *Presenter) Dialog(result tictactoe.Result) Dialog {
	if result.Status != entity.StatusWon {
		return Dialog{
			Status:  entity.StatusDraw,
			Title:   drawTitle,
			Message: drawMessage,
			DelayMS: drawDialogDelay.Milliseconds(),
		}
	}

	winner := that.roster.ByMark(result.Winner)

	return Dialog{
		Status:  entity.StatusWon,
		Title:   "¡" + winner.Name + " gana!",
		Message: winner.VictoryMessage,
		Image:   winner.Icon,
		Alt:     winner.Name,
		Line:    result.Line,
		DelayMS: winDialogDelay.Milliseconds(),
	}
}

// View renders match. Finished rounds carry their dialog so late subscribers can show it too.
func (that *Presenter) View(match entity.Match) GameView {
	view := GameView{
		Match: match,
		Turn:  that.Turn(match.Game),
	}

	if match.Game.IsOver() {
		dialog := that.Dialog(tictactoe.Result{
			Status: match.Game.Status,
			Winner: match.Game.Winner,
			Line:   match.Game.WinningLine,
		})
		view.Dialog = &dialog
	}

	return view
}
