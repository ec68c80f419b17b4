package redis

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGame(t *testing.T) *tictactoe.GameController {
	t.Helper()

	game, err := tictactoe.NewGameController(discardLogger(), entity.MarkX)
	require.NoError(t, err)

	return game
}

func TestNewGameStatePayload(t *testing.T) {
	t.Run("In progress carries the turn", func(t *testing.T) {
		// Given: a game after X took the center
		game := newGame(t)
		state, err := game.ApplyMove(entity.Position{Row: 1, Col: 1})
		require.NoError(t, err)

		// When: building the payload
		payload := newGameStatePayload(state)

		// Then: O is to move
		assert.Equal(t, GameStatePayload{
			Board:  [3][3]string{{"", "", ""}, {"", "X", ""}, {"", "", ""}},
			Status: "in_progress",
			Turn:   "O",
		}, payload)
	})

	t.Run("Win carries the winner and the line", func(t *testing.T) {
		// Given: X completed the top row
		game := newGame(t)
		var state entity.GameState
		for _, pos := range []entity.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 2}} {
			var err error
			state, err = game.ApplyMove(pos)
			require.NoError(t, err)
		}

		// When: building the payload
		payload := newGameStatePayload(state)

		// Then: the winner and the winning cells are present, no turn
		assert.Equal(t, GameStatePayload{
			Board:  [3][3]string{{"X", "X", "X"}, {"O", "O", ""}, {"", "", ""}},
			Status: "won",
			Winner: "X",
			Line:   []Cell{{0, 0}, {0, 1}, {0, 2}},
		}, payload)
	})
}

func TestPublisher_Notify(t *testing.T) {
	t.Run("Full queue drops snapshots without blocking", func(t *testing.T) {
		// Given: a publisher with room for one snapshot and nobody draining it
		publisher := NewPublisher(discardLogger(), nil, "events", "game", 1)
		game := newGame(t)
		game.Subscribe(publisher.Notify)

		// When: two state changes happen
		_, err := game.ApplyMove(entity.Position{Row: 0, Col: 0})
		require.NoError(t, err)
		game.Reset()

		// Then: only the first snapshot is queued and the sequence still advanced
		require.Len(t, publisher.queue, 1)
		queued := <-publisher.queue
		assert.Equal(t, uint64(1), queued.seq)
		assert.Equal(t, uint64(2), publisher.seq)
	})
}

func TestPublisher_RunLogsUnpublishedSnapshotsOnStop(t *testing.T) {
	// Given: a publisher whose redis is unreachable, with three snapshots queued
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	publisher := NewPublisher(logger, client, "events", "game", 8)
	game := newGame(t)
	game.Subscribe(publisher.Notify)

	_, err := game.ApplyMove(entity.Position{Row: 0, Col: 0})
	require.NoError(t, err)
	_, err = game.ApplyMove(entity.Position{Row: 1, Col: 1})
	require.NoError(t, err)
	game.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When: Run is stopped
	require.NoError(t, publisher.Run(ctx))

	// Then: the queue was drained and every lost snapshot was logged with its seq
	assert.Empty(t, publisher.queue)
	assert.Equal(t, 3, strings.Count(logs.String(), "failed to publish game state"))
	for _, seq := range []string{`"seq":1`, `"seq":2`, `"seq":3`} {
		assert.Contains(t, logs.String(), seq)
	}
}
