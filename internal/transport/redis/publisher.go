package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// publishTimeout bounds one PUBLISH. Stopping Run does not abort a PUBLISH in flight.
const publishTimeout = 3 * time.Second

type queuedState struct {
	seq   uint64
	state entity.GameState
}

// Publisher feeds game snapshots to a redis channel. Notify runs on the game goroutine and never
// blocks it; Run does the network I/O.
type Publisher struct {
	logger *slog.Logger
	client *redis.Client

	channel string
	gameID  string

	queue chan queuedState
	seq   uint64
}

func NewPublisher(logger *slog.Logger, client *redis.Client, channel, gameID string, buffer int) *Publisher {
	if buffer < 1 {
		buffer = 1
	}

	return &Publisher{
		logger:  logger.With("component", "publisher", "channel", channel),
		client:  client,
		channel: channel,
		gameID:  gameID,
		queue:   make(chan queuedState, buffer),
	}
}

// Notify - queues a snapshot. When the queue is full the snapshot is dropped, leaving a gap in seq.
func (that *Publisher) Notify(state entity.GameState) {
	that.seq++

	select {
	case that.queue <- queuedState{seq: that.seq, state: state}:
	default:
		that.logger.Warn("publish queue is full, snapshot dropped", "seq", that.seq)
	}
}

// Run - publishes queued snapshots until ctx is done, then publishes what is still queued.
func (that *Publisher) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for {
		select {
		case <-ctx.Done():
			that.flush(ctx)

			log.Info("publisher stopped")
			return nil
		case queued := <-that.queue:
			that.publishOrLog(ctx, queued)
		}
	}
}

// flush - drains the queue. Snapshots that can't be published are logged with their seq.
func (that *Publisher) flush(ctx context.Context) {
	for {
		select {
		case queued := <-that.queue:
			that.publishOrLog(ctx, queued)
		default:
			return
		}
	}
}

func (that *Publisher) publishOrLog(ctx context.Context, queued queuedState) {
	if err := that.publish(ctx, queued); err != nil {
		that.logger.Error("failed to publish game state", "seq", queued.seq, "error", err)
	}
}

func (that *Publisher) publish(ctx context.Context, queued queuedState) error {
	payload, err := json.Marshal(newGameStatePayload(queued.state))
	if err != nil {
		return fmt.Errorf("could not marshal game state: %w", err)
	}

	event, err := json.Marshal(Event{
		Type:    EventGameState,
		GameID:  that.gameID,
		Seq:     queued.seq,
		Payload: payload,
	})
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err = that.client.Publish(ctx, that.channel, event).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
