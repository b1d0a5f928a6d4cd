package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame()

	// Then: the board is empty, X moves first and the round is ongoing
	assert.Equal(t, [BoardSize]Mark{}, game.Board)
	assert.Equal(t, PlayerX, game.Turn)
	assert.True(t, game.IsOngoing())
	assert.False(t, game.IsOver())
	assert.Empty(t, game.Winner)
	assert.Nil(t, game.WinningLine)
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsWon returns true when game status is won", func(t *testing.T) {
		// Given: a game with StatusWon
		game := Game{Status: StatusWon}

		// Then: it is won and over
		assert.True(t, game.IsWon())
		assert.True(t, game.IsOver())
		assert.False(t, game.IsDraw())
	})

	t.Run("IsDraw returns true when game status is draw", func(t *testing.T) {
		// Given: a game with StatusDraw
		game := Game{Status: StatusDraw}

		// Then: it is a draw and over
		assert.True(t, game.IsDraw())
		assert.True(t, game.IsOver())
		assert.False(t, game.IsWon())
	})
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.False(t, EmptyCell.IsPlayer())
}

func TestGame_WinLine(t *testing.T) {
	t.Run("Returns the top row for X", func(t *testing.T) {
		// Given: a board where X owns the top row
		game := Game{
			Board: [BoardSize]Mark{
				PlayerX, PlayerX, PlayerX,
				EmptyCell, PlayerO, EmptyCell,
				PlayerO, EmptyCell, EmptyCell,
			},
		}

		// When: looking for X's win line
		line, ok := game.WinLine(PlayerX)

		// Then: the top row is reported
		require.True(t, ok)
		assert.Equal(t, [3]int{0, 1, 2}, line)
	})

	t.Run("Returns the first line in check order when two lines match", func(t *testing.T) {
		// Given: a board where O owns the left column and the main diagonal
		game := Game{
			Board: [BoardSize]Mark{
				PlayerO, PlayerX, PlayerX,
				PlayerO, PlayerO, PlayerX,
				PlayerO, PlayerX, PlayerO,
			},
		}

		// When: looking for O's win line
		line, ok := game.WinLine(PlayerO)

		// Then: the column wins over the diagonal
		require.True(t, ok)
		assert.Equal(t, [3]int{0, 3, 6}, line)
	})

	t.Run("Returns the anti-diagonal", func(t *testing.T) {
		game := Game{
			Board: [BoardSize]Mark{
				EmptyCell, EmptyCell, PlayerO,
				EmptyCell, PlayerO, EmptyCell,
				PlayerO, PlayerX, PlayerX,
			},
		}

		line, ok := game.WinLine(PlayerO)

		require.True(t, ok)
		assert.Equal(t, [3]int{2, 4, 6}, line)
	})

	t.Run("Returns false when the mark owns no line", func(t *testing.T) {
		game := Game{
			Board: [BoardSize]Mark{
				PlayerX, PlayerO, EmptyCell,
				EmptyCell, PlayerX, EmptyCell,
				EmptyCell, EmptyCell, PlayerO,
			},
		}

		_, ok := game.WinLine(PlayerX)

		assert.False(t, ok)
	})

	t.Run("Never matches empty cells", func(t *testing.T) {
		game := NewGame()

		_, ok := game.WinLine(EmptyCell)

		assert.False(t, ok)
	})
}

func TestGame_IsFull(t *testing.T) {
	t.Run("Full board", func(t *testing.T) {
		game := Game{
			Board: [BoardSize]Mark{
				PlayerX, PlayerO, PlayerX,
				PlayerO, PlayerX, PlayerO,
				PlayerO, PlayerX, PlayerO,
			},
		}

		assert.True(t, game.IsFull())
		assert.Equal(t, 4, game.MarkCount(PlayerX))
		assert.Equal(t, 5, game.MarkCount(PlayerO))
	})

	t.Run("Board with an empty cell", func(t *testing.T) {
		game := Game{
			Board: [BoardSize]Mark{
				PlayerX, PlayerO, PlayerX,
				PlayerO, EmptyCell, PlayerO,
				PlayerO, PlayerX, PlayerO,
			},
		}

		assert.False(t, game.IsFull())
	})
}

func TestGame_IsCellFree(t *testing.T) {
	game := NewGame()
	game.Board[4] = PlayerX

	assert.True(t, game.IsCellFree(0))
	assert.False(t, game.IsCellFree(4))
	assert.False(t, game.IsCellFree(-1))
	assert.False(t, game.IsCellFree(BoardSize))
}
