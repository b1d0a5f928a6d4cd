package presenter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tresenraya-backend/internal/entity"
	"github.com/rocketscienceinc/tresenraya-backend/internal/tictactoe"
)

var colorPalette = map[string]string{
	"good": "#9b7fd4",
	"bad":  "#d9534f",
}

const (
	rowSeparator = "───┼───┼───"
	defaultColor = "#cccccc"
)

// Terminal draws matches as text with ANSI colors when the writer supports them.
type Terminal struct {
	out       *termenv.Output
	presenter *Presenter
}

func NewTerminal(w io.Writer, presenter *Presenter, opts ...termenv.OutputOption) *Terminal {
	return &Terminal{
		out:       termenv.NewOutput(w, opts...),
		presenter: presenter,
	}
}

// HandleEvent is a tictactoe.Subscriber.
func (that *Terminal) HandleEvent(event tictactoe.Event) {
	switch event.Type {
	case tictactoe.EventState:
		that.Render(event.Match)
	case tictactoe.EventResult:
		if event.Result != nil {
			that.RenderDialog(that.presenter.Dialog(*event.Result))
		}
	}
}

func (that *Terminal) Render(match entity.Match) {
	var sb strings.Builder

	highlight := make(map[int]bool, 3)
	for _, cell := range match.Game.WinningLine {
		highlight[cell] = true
	}

	sb.WriteString("\n")
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			idx := row*3 + col
			cells = append(cells, " "+that.cell(match.Game.Board[idx], idx, highlight[idx])+" ")
		}

		sb.WriteString(strings.Join(cells, "│"))
		sb.WriteString("\n")

		if row < 2 {
			sb.WriteString(rowSeparator)
			sb.WriteString("\n")
		}
	}

	roster := that.presenter.Roster()
	fmt.Fprintf(&sb, "\n%s %d · Empates %d · %s %d\n",
		that.name(roster.X), match.Scores.X,
		match.Scores.Draws,
		that.name(roster.O), match.Scores.O,
	)

	if match.Game.IsOngoing() {
		turn := that.presenter.Turn(match.Game)
		fmt.Fprintf(&sb, "Turno: %s (%s)\n", that.name(roster.ByMark(turn.Mark)), turn.Mark)
	}

	_, _ = that.out.WriteString(sb.String())
}

func (that *Terminal) RenderDialog(dialog Dialog) {
	title := that.out.String(dialog.Title).Bold().String()

	_, _ = that.out.WriteString(fmt.Sprintf("\n%s\n%s\n", title, dialog.Message))
}

func (that *Terminal) cell(mark entity.Mark, idx int, highlight bool) string {
	if mark == entity.EmptyCell {
		return that.out.String(strconv.Itoa(idx + 1)).Faint().String()
	}

	player := that.presenter.Roster().ByMark(mark)
	style := that.out.String(string(mark)).Foreground(that.color(player.Color)).Bold()
	if highlight {
		style = style.Reverse()
	}

	return style.String()
}

func (that *Terminal) name(player entity.Player) string {
	return that.out.String(player.Name).Foreground(that.color(player.Color)).String()
}

func (that *Terminal) color(name string) termenv.Color {
	hex, ok := colorPalette[name]
	if !ok {
		hex = defaultColor
	}
	return that.out.Color(hex)
}
