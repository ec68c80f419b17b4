package console

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const (
	actionNone    = ""
	actionMove    = "move"
	actionReset   = "reset"
	actionQuit    = "quit"
	actionInvalid = "invalid"
)

const usage = "usage: <row> <col> with row and col in 0-2 | reset | quit\n"

// Message is one parsed input line.
type Message struct {
	Action   string
	Position entity.Position
}

func parseMessage(line string) Message {
	fields := strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	switch len(fields) {
	case 0:
		return Message{Action: actionNone}
	case 1:
		switch fields[0] {
		case "reset", "r":
			return Message{Action: actionReset}
		case "quit", "q", "exit":
			return Message{Action: actionQuit}
		}
	case 2:
		row, rowErr := strconv.Atoi(fields[0])
		col, colErr := strconv.Atoi(fields[1])
		if rowErr == nil && colErr == nil {
			return Message{Action: actionMove, Position: entity.Position{Row: row, Col: col}}
		}
	}

	return Message{Action: actionInvalid}
}
