package apperror

import "errors"

var (
	// ErrOutOfRange - the position addresses a cell outside the 3x3 grid. It's a caller bug.
	ErrOutOfRange = errors.New("position is out of range")
	// ErrIllegalMove - the targeted cell is already occupied.
	ErrIllegalMove = errors.New("cell is already occupied")
	// ErrGameOver - a move was attempted after a win or a draw.
	ErrGameOver = errors.New("game is already finished")

	ErrInvalidMark = errors.New("invalid mark")
)

// IsRejectedTap - reports whether err is an expected rejection that a presenter treats as a no-op tap.
func IsRejectedTap(err error) bool {
	return errors.Is(err, ErrIllegalMove) || errors.Is(err, ErrGameOver)
}
