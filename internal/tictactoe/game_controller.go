package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// Subscriber receives a snapshot after every accepted move and every reset.
type Subscriber func(state entity.GameState)

// GameController is the game state machine. It owns exactly one GameState and is not safe for
// concurrent use: all calls must come from the goroutine that drives the game.
type GameController struct {
	logger *slog.Logger

	id          string
	players     [2]entity.Player
	state       entity.GameState
	subscribers map[int]Subscriber
	nextSubID   int
}

func NewGameController(logger *slog.Logger, firstMark entity.Mark) (*GameController, error) {
	players, err := entity.NewPlayers(firstMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create players: %w", err)
	}

	id := uuid.NewString()

	return &GameController{
		logger:      logger.With("component", "game", "game_id", id),
		id:          id,
		players:     players,
		state:       entity.NewGameState(players[entity.PlayerOne]),
		subscribers: make(map[int]Subscriber),
	}, nil
}

func (that *GameController) ID() string {
	return that.id
}

func (that *GameController) Players() [2]entity.Player {
	return that.players
}

// State returns a snapshot of the current game.
func (that *GameController) State() entity.GameState {
	return that.state.Clone()
}

// ApplyMove places the current player's mark at pos. Rejected moves leave the state unchanged and
// return the unchanged snapshot with the error.
func (that *GameController) ApplyMove(pos entity.Position) (entity.GameState, error) {
	if err := that.validateMove(pos); err != nil {
		return that.State(), fmt.Errorf("invalid move: %w", err)
	}

	mover := that.state.Current

	board, err := that.state.Board.Place(pos, mover.Mark)
	if err != nil {
		return that.State(), fmt.Errorf("invalid move: %w", err)
	}

	next := that.state
	next.Board = board
	that.updateGameStatus(&next, mover, pos)
	that.state = next

	that.logger.Debug("move applied", "player", mover.Mark.Sign(), "position", pos.String(), "status", next.Status())

	that.publish()

	return that.State(), nil
}

// Reset returns the game to an empty board with player one to move.
func (that *GameController) Reset() entity.GameState {
	that.state = entity.NewGameState(that.players[entity.PlayerOne])

	that.logger.Debug("game reset")

	that.publish()

	return that.State()
}

// Subscribe registers fn for state changes. Subscribers run synchronously in subscription order.
func (that *GameController) Subscribe(fn Subscriber) func() {
	subID := that.nextSubID
	that.nextSubID++
	that.subscribers[subID] = fn

	return func() {
		delete(that.subscribers, subID)
	}
}

// validateMove - checks if the move is valid.
func (that *GameController) validateMove(pos entity.Position) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfRange, pos)
	}

	if that.state.IsTerminal() {
		return fmt.Errorf("%w: %s", apperror.ErrGameOver, that.state.Status())
	}

	if !that.state.Board.IsEmpty(pos) {
		return fmt.Errorf("%w: %s", apperror.ErrIllegalMove, pos)
	}

	return nil
}

// updateGameStatus - checks only the lines through the played position, first match wins.
func (that *GameController) updateGameStatus(state *entity.GameState, mover entity.Player, pos entity.Position) {
	for _, line := range entity.LinesThrough(pos) {
		if state.Board.Completes(line, mover.Mark) {
			state.Win = &entity.Win{Player: mover, Line: line}

			that.logger.Info("game won", "player", mover.Mark.Sign(), "line", fmt.Sprint(line))

			return
		}
	}

	if state.Board.IsFull() {
		that.logger.Info("game drawn")

		return
	}

	state.Current = that.players[mover.Turn.Next()]
}

// publish - subscribers added during a round are first notified on the next change.
func (that *GameController) publish() {
	lastSubID := that.nextSubID
	for subID := 0; subID < lastSubID; subID++ {
		if fn, ok := that.subscribers[subID]; ok {
			fn(that.State())
		}
	}
}
