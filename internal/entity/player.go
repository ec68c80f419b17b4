package entity

import "github.com/rocketscienceinc/tictactoe-local/internal/apperror"

// Mark is the symbol a player places on the board. The value is also its display sign.
type Mark string

const (
	NoMark Mark = ""
	MarkX  Mark = "X"
	MarkO  Mark = "O"
)

func ParseMark(sign string) (Mark, error) {
	mark := Mark(sign)
	if !mark.Valid() {
		return NoMark, apperror.ErrInvalidMark
	}

	return mark, nil
}

func (that Mark) Valid() bool {
	return that == MarkX || that == MarkO
}

func (that Mark) Sign() string {
	return string(that)
}

func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return NoMark
	}
}

// Turn is the turn-order slot of a player.
type Turn int

const (
	PlayerOne Turn = iota
	PlayerTwo
)

func (that Turn) Next() Turn {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (that Turn) String() string {
	if that == PlayerOne {
		return "player one"
	}
	return "player two"
}

type Player struct {
	Mark Mark
	Turn Turn
}

// NewPlayers - player one plays firstMark, player two the opposite mark.
func NewPlayers(firstMark Mark) ([2]Player, error) {
	if !firstMark.Valid() {
		return [2]Player{}, apperror.ErrInvalidMark
	}

	return [2]Player{
		{Mark: firstMark, Turn: PlayerOne},
		{Mark: firstMark.Opponent(), Turn: PlayerTwo},
	}, nil
}
