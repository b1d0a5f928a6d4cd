package entity

type (
	Mark   string
	Status string
)

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"

	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const BoardSize = 9

// WinCombos lists the win lines in the order they are checked: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game is the state of a single round.
type Game struct {
	Board       [BoardSize]Mark `json:"board"`
	Turn        Mark            `json:"player_turn"`
	Status      Status          `json:"status"`
	Winner      Mark            `json:"winner,omitempty"`
	WinningLine []int           `json:"winning_line,omitempty"`
}

func NewGame() Game {
	return Game{
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// Opponent returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// WinLine returns the first win line fully owned by mark.
func (that Game) WinLine(mark Mark) ([3]int, bool) {
	if !mark.IsPlayer() {
		return [3]int{}, false
	}

	for _, combo := range WinCombos {
		if that.Board[combo[0]] == mark && that.Board[combo[1]] == mark && that.Board[combo[2]] == mark {
			return combo, true
		}
	}

	return [3]int{}, false
}

func (that Game) IsFull() bool {
	for _, cell := range that.Board {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// IsCellFree reports whether cell is on the board and not yet marked.
func (that Game) IsCellFree(cell int) bool {
	return cell >= 0 && cell < BoardSize && that.Board[cell] == EmptyCell
}

func (that Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that Game) IsDraw() bool {
	return that.Status == StatusDraw
}

// IsOver reports whether the round has ended in a win or a draw.
func (that Game) IsOver() bool {
	return !that.IsOngoing()
}

// MarkCount returns how many cells hold mark.
func (that Game) MarkCount(mark Mark) int {
	count := 0
	for _, cell := range that.Board {
		if cell == mark {
			count++
		}
	}
	return count
}
