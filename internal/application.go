package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-local/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-local/internal/transport/redis"
)

var ErrAddrNotFound = errors.New("redis host or port is empty")

// RunApp - runs one local game in the terminal until the player quits, input ends or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	firstMark, err := entity.ParseMark(conf.Game.FirstMark)
	if err != nil {
		return fmt.Errorf("invalid first mark %q: %w", conf.Game.FirstMark, err)
	}

	game, err := tictactoe.NewGameController(logger, firstMark)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	if conf.Redis.Enabled {
		closeFeed, err := startFeed(ctx, logger, conf, game)
		if err != nil {
			return err
		}

		defer closeFeed()
	}

	// run console presenter
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting game", "game_id", game.ID(), "first_mark", firstMark.Sign())
		consoleErrCh <- console.New(logger, game, in, out).Run(ctx)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		log.Info("Game session ended")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// startFeed - connects to redis and publishes every state change of game.
func startFeed(ctx context.Context, logger *slog.Logger, conf *config.Config, game *tictactoe.GameController) (func(), error) {
	log := logger.With("component", "app")

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	publisher := redis.NewPublisher(logger, redisStorage.Connection, conf.Redis.Channel, game.ID(), conf.Redis.Buffer)
	// Notify never blocks, so the subscription may outlive the feed
	game.Subscribe(publisher.Notify)

	feedCtx, stopFeed := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)

		if err := publisher.Run(feedCtx); err != nil {
			log.Error("publisher error", "error", err)
		}
	}()

	return func() {
		stopFeed()
		<-done

		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}, nil
}
