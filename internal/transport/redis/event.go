package redis

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const EventGameState = "game_state"

// Event is the envelope published on the events channel.
type Event struct {
	Type    string          `json:"event"`
	GameID  string          `json:"game_id"`
	Seq     uint64          `json:"seq"`
	Payload json.RawMessage `json:"payload"`
}

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GameStatePayload mirrors a game snapshot. Empty cells are empty strings.
type GameStatePayload struct {
	Board  [entity.BoardSize][entity.BoardSize]string `json:"board"`
	Status string                                     `json:"status"`
	Turn   string                                     `json:"turn,omitempty"`
	Winner string                                     `json:"winner,omitempty"`
	Line   []Cell                                     `json:"line,omitempty"`
}

func newGameStatePayload(state entity.GameState) GameStatePayload {
	var payload GameStatePayload

	for row, marks := range state.Board.Rows() {
		for col, mark := range marks {
			payload.Board[row][col] = mark.Sign()
		}
	}

	payload.Status = string(state.Status())

	switch state.Status() {
	case entity.StatusInProgress:
		payload.Turn = state.Current.Mark.Sign()
	case entity.StatusWon:
		payload.Winner = state.Win.Player.Mark.Sign()
		for _, pos := range state.Win.Line {
			payload.Line = append(payload.Line, Cell{Row: pos.Row, Col: pos.Col})
		}
	case entity.StatusDraw:
	}

	return payload
}
