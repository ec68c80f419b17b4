package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

var errQuit = errors.New("quit requested")

type gameController interface {
	ApplyMove(pos entity.Position) (entity.GameState, error)
	Reset() entity.GameState
	State() entity.GameState
	Subscribe(fn tictactoe.Subscriber) func()
}

// Server is the terminal presenter: it renders published game states and forwards moves and resets.
type Server struct {
	logger   *slog.Logger
	game     gameController
	in       io.Reader
	out      io.Writer
	handlers map[string]func(msg Message) error
}

func New(logger *slog.Logger, game gameController, in io.Reader, out io.Writer) *Server {
	server := &Server{
		logger:   logger.With("component", "console"),
		game:     game,
		in:       in,
		out:      out,
		handlers: make(map[string]func(Message) error),
	}

	server.handlers[actionNone] = server.handleNone
	server.handlers[actionMove] = server.handleMove
	server.handlers[actionReset] = server.handleReset
	server.handlers[actionQuit] = server.handleQuit
	server.handlers[actionInvalid] = server.handleInvalid

	return server
}

// Run - renders the current game and processes input lines until quit, EOF or ctx is done.
func (that *Server) Run(ctx context.Context) error {
	unsubscribe := that.game.Subscribe(that.render)
	defer unsubscribe()

	that.write(usage)
	that.render(that.game.State())

	if err := that.handleMessages(ctx); err != nil {
		if errors.Is(err, errQuit) {
			return nil
		}

		return err
	}

	return nil
}

// handleMessages - processes input lines from the player.
func (that *Server) handleMessages(ctx context.Context) error {
	log := that.logger.With("method", "handleMessages")

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			log.Info("context done, stop reading input")
			return nil
		}

		message := parseMessage(scanner.Text())

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			continue
		}

		if err := handler(message); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func (that *Server) render(state entity.GameState) {
	if err := Render(that.out, state); err != nil {
		that.logger.Error("failed to render game", "error", err)
	}
}

func (that *Server) write(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
