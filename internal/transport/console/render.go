package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const (
	emptySign    = "."
	rowSeparator = "---+---+---"
)

// Render writes the board and a status line for state.
func Render(w io.Writer, state entity.GameState) error {
	var sb strings.Builder

	for i, row := range state.Board.Rows() {
		if i > 0 {
			sb.WriteString(rowSeparator + "\n")
		}

		fmt.Fprintf(&sb, " %s | %s | %s\n", sign(row[0]), sign(row[1]), sign(row[2]))
	}

	sb.WriteString(statusLine(state) + "\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func statusLine(state entity.GameState) string {
	switch state.Status() {
	case entity.StatusWon:
		cells := make([]string, 0, len(state.Win.Line))
		for _, pos := range state.Win.Line {
			cells = append(cells, pos.String())
		}

		return fmt.Sprintf("Player %s won! %s", state.Win.Player.Mark.Sign(), strings.Join(cells, " "))
	case entity.StatusDraw:
		return "Draw!"
	default:
		return fmt.Sprintf("Player %s to move", state.Current.Mark.Sign())
	}
}

func sign(mark entity.Mark) string {
	if mark == entity.NoMark {
		return emptySign
	}
	return mark.Sign()
}
