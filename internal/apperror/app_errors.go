package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrNotFound     = errors.New("not found")
)

// IsInvalidMove reports whether err is a rejected placement. Rejected placements leave the match untouched.
func IsInvalidMove(err error) bool {
	return errors.Is(err, ErrGameFinished) || errors.Is(err, ErrCellOccupied) || errors.Is(err, ErrInvalidCell)
}
