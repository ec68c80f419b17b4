package console

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

func (that *Server) handleMove(msg Message) error {
	log := that.logger.With("method", "handleMove", "position", msg.Position.String())

	// coordinates outside the grid never reach the game
	if !msg.Position.Valid() {
		that.write(usage)
		return nil
	}

	_, err := that.game.ApplyMove(msg.Position)
	switch {
	case err == nil:
		return nil
	case apperror.IsRejectedTap(err):
		log.Debug("tap ignored", "reason", err)
		return nil
	case errors.Is(err, apperror.ErrOutOfRange):
		log.Error("presenter sent a position outside the board", "error", err)
		return fmt.Errorf("failed to apply move: %w", err)
	default:
		return fmt.Errorf("failed to apply move: %w", err)
	}
}

func (that *Server) handleReset(_ Message) error {
	that.game.Reset()

	return nil
}

func (that *Server) handleQuit(_ Message) error {
	return errQuit
}

func (that *Server) handleInvalid(_ Message) error {
	that.write(usage)

	return nil
}

func (that *Server) handleNone(_ Message) error {
	return nil
}
