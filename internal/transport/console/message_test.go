package console

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestParseMessage(t *testing.T) {
	tests := []struct {
		line string
		want Message
	}{
		{line: "", want: Message{Action: actionNone}},
		{line: "   ", want: Message{Action: actionNone}},
		{line: "1 2", want: Message{Action: actionMove, Position: entity.Position{Row: 1, Col: 2}}},
		{line: "0,2", want: Message{Action: actionMove, Position: entity.Position{Row: 0, Col: 2}}},
		{line: " 2\t0 ", want: Message{Action: actionMove, Position: entity.Position{Row: 2, Col: 0}}},
		{line: "3 0", want: Message{Action: actionMove, Position: entity.Position{Row: 3, Col: 0}}},
		{line: "reset", want: Message{Action: actionReset}},
		{line: "R", want: Message{Action: actionReset}},
		{line: "quit", want: Message{Action: actionQuit}},
		{line: "q", want: Message{Action: actionQuit}},
		{line: "a b", want: Message{Action: actionInvalid}},
		{line: "1", want: Message{Action: actionInvalid}},
		{line: "1 2 3", want: Message{Action: actionInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, parseMessage(tt.line))
		})
	}
}
