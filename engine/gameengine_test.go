package engine

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/minaorangina/canary/game"
	"github.com/minaorangina/canary/protocol"
	"github.com/minaorangina/canary/records"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameEngineConstructor(t *testing.T) {
	t.Run("rejects a bad player count", func(t *testing.T) {
		_, err := NewGameEngine(GameEngineOpts{NumPlayers: 1})
		assert.True(t, errors.Is(err, game.ErrTooFewPlayers))

		_, err = NewGameEngine(GameEngineOpts{NumPlayers: 9})
		assert.True(t, errors.Is(err, game.ErrTooManyPlayers))
	})

	t.Run("generates an ID and a seed", func(t *testing.T) {
		ge, err := NewGameEngine(GameEngineOpts{NumPlayers: 3})
		require.NoError(t, err)
		assert.NotEmpty(t, ge.ID())
		assert.NotZero(t, ge.Seed())
		assert.Equal(t, Idle, ge.PlayState())
		assert.Equal(t, -1, ge.Result().Winner)
	})

	t.Run("keeps a given ID", func(t *testing.T) {
		ge, err := NewGameEngine(GameEngineOpts{GameID: "some-id", NumPlayers: 2, Seed: 4})
		require.NoError(t, err)
		assert.Equal(t, "some-id", ge.ID())
		assert.Equal(t, int64(4), ge.Seed())
	})
}

func TestGameEngineStart(t *testing.T) {
	t.Run("plays to a winner and reports every turn", func(t *testing.T) {
		buf := &bytes.Buffer{}
		ge, err := NewGameEngine(GameEngineOpts{
			GameID:            "game-1",
			NumPlayers:        4,
			Seed:              42,
			CheckConservation: true,
			Observers:         []Observer{NewRecordObserver(records.NewWriter(buf))},
		})
		require.NoError(t, err)

		res, err := ge.Start(context.Background())
		require.NoError(t, err)

		assert.Equal(t, Finished, ge.PlayState())
		assert.Equal(t, "finished", res.State)
		assert.True(t, res.Winner >= 0 && res.Winner < 4)
		assert.Equal(t, 4, res.Players)
		assert.Equal(t, int64(42), res.Seed)
		assert.Empty(t, res.Error)

		written, err := records.Read(buf)
		require.NoError(t, err)
		assert.Len(t, written, res.Turns)
		assert.Equal(t, ge.Records(), written)
		assert.Equal(t, "game-1", written[0].GameID)
		assert.Equal(t, 1, written[0].TurnNumber)
	})

	t.Run("cannot be started twice", func(t *testing.T) {
		ge, err := NewGameEngine(GameEngineOpts{NumPlayers: 2, Seed: 8})
		require.NoError(t, err)

		_, err = ge.Start(context.Background())
		require.NoError(t, err)

		_, err = ge.Start(context.Background())
		assert.True(t, errors.Is(err, ErrAlreadyStarted))
	})

	t.Run("stops between turns when cancelled", func(t *testing.T) {
		ge, err := NewGameEngine(GameEngineOpts{NumPlayers: 2, Seed: 1})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := ge.Start(ctx)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, Failed, ge.PlayState())
		assert.Equal(t, -1, res.Winner)
		assert.NotEmpty(t, res.Error)
	})

	t.Run("a two player game that cycles hits the turn limit", func(t *testing.T) {
		// with seed 1 both hands keep picking the pile back up once the
		// draw pile and the tens are gone
		ge, err := NewGameEngine(GameEngineOpts{
			NumPlayers:        2,
			Seed:              1,
			CheckConservation: true,
		})
		require.NoError(t, err)

		res, err := ge.Start(context.Background())
		assert.True(t, errors.Is(err, game.ErrTurnLimitExceeded))
		assert.Equal(t, Failed, ge.PlayState())
		assert.Equal(t, "failed", res.State)
		assert.Equal(t, -1, res.Winner)
		assert.Equal(t, 100*58, res.Turns)
		assert.Contains(t, res.Error, "turn limit exceeded")
	})

	t.Run("an observer error stops the game", func(t *testing.T) {
		boom := errors.New("boom")
		ge, err := NewGameEngine(GameEngineOpts{
			NumPlayers: 2,
			Seed:       1,
			Observers: []Observer{RecordFunc(func(protocol.TurnRecord) error {
				return boom
			})},
		})
		require.NoError(t, err)

		res, err := ge.Start(context.Background())
		assert.True(t, errors.Is(err, boom))
		assert.Equal(t, 1, res.Turns)
	})

	t.Run("same seed plays the same game", func(t *testing.T) {
		play := func() Result {
			ge, err := NewGameEngine(GameEngineOpts{GameID: "x", NumPlayers: 5, Seed: 77})
			require.NoError(t, err)
			res, err := ge.Start(context.Background())
			require.NoError(t, err)
			return res
		}

		assert.Equal(t, play(), play())
	})
}

func TestTraceObserver(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	ge, err := NewGameEngine(GameEngineOpts{
		GameID:     "traced",
		NumPlayers: 3,
		Seed:       9,
		Observers:  []Observer{NewTraceObserver(logger)},
	})
	require.NoError(t, err)

	res, err := ge.Start(context.Background())
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.NotEmpty(t, entries)

	first := entries[0]
	assert.Equal(t, "StartingPlayer", first.Data["action"])
	assert.Equal(t, "traced", first.Data["game_id"])

	last := hook.LastEntry()
	assert.Equal(t, "Game Over", last.Message)

	winnerLine := entries[len(entries)-2]
	assert.Equal(t, "PlayerFinished", winnerLine.Data["action"])
	assert.Equal(t, res.Winner+1, winnerLine.Data["player"])
	assert.Contains(t, winnerLine.Message, "declared the Canary")
}

func TestEventText(t *testing.T) {
	tt := []struct {
		ev   protocol.Event
		want string
	}{
		{protocol.Event{Player: 0, Action: protocol.TurnStarted}, "Player 1's turn"},
		{protocol.Event{Action: protocol.PickUp}, "Pile picked up!"},
		{protocol.Event{Action: protocol.Reverse}, "Reversing Direction!"},
		{protocol.Event{Action: protocol.Burn}, "4 in a row!"},
		{protocol.Event{Player: 2, Action: protocol.PlayerFinished}, "Player 3 wins and is declared the Canary!"},
	}

	for _, tc := range tt {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, eventText(tc.ev))
		})
	}
}
