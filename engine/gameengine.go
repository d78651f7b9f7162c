package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/canary/game"
	"github.com/minaorangina/canary/protocol"
	"github.com/minaorangina/canary/rng"
	uuid "github.com/satori/go.uuid"
)

// PlayState represents the state of a simulation
// idle -> created but not run
// inProgress -> turns are being played
// finished -> a player has won
// failed -> the game stopped without a winner
type PlayState int

const (
	Idle PlayState = iota
	InProgress
	Finished
	Failed
)

var playStateNames = []string{"idle", "inProgress", "finished", "failed"}

func (ps PlayState) String() string {
	if ps < Idle || int(ps) >= len(playStateNames) {
		return ""
	}
	return playStateNames[ps]
}

var ErrAlreadyStarted = errors.New("game engine has already started")

// NewID returns a new game ID
func NewID() string {
	return uuid.NewV4().String()
}

// GameEngineOpts configures a GameEngine
type GameEngineOpts struct {
	GameID     string
	NumPlayers int
	// Seed fixes the random source. Zero picks a random seed.
	Seed              int64
	MaxTurnsFactor    int
	CheckConservation bool
	Observers         []Observer
}

// Result summarises a finished simulation
type Result struct {
	GameID  string `json:"game_id"`
	Seed    int64  `json:"seed"`
	Players int    `json:"players"`
	// Winner is the 0-based index of the winning player, or -1
	Winner int    `json:"winner"`
	Turns  int    `json:"turns"`
	State  string `json:"state"`
	Error  string `json:"error,omitempty"`
}

// GameEngine runs one game to completion and reports what happens to its
// observers. Its accessors are safe to call while the game is running.
type GameEngine struct {
	id        string
	seed      int64
	game      *game.Shed
	observers []Observer

	mu        sync.RWMutex
	playState PlayState
	records   []protocol.TurnRecord
	err       error
}

// NewGameEngine deals a new game
func NewGameEngine(opts GameEngineOpts) (*GameEngine, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = rng.Seed()
	}

	gameOpts := []game.Option{
		game.WithSource(rng.NewSeeded(seed)),
		game.WithMaxTurnsFactor(opts.MaxTurnsFactor),
	}
	if opts.CheckConservation {
		gameOpts = append(gameOpts, game.WithConservationCheck())
	}

	g, err := game.New(opts.NumPlayers, gameOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	id := opts.GameID
	if id == "" {
		id = NewID()
	}

	return &GameEngine{
		id:        id,
		seed:      seed,
		game:      g,
		observers: opts.Observers,
		records:   []protocol.TurnRecord{},
	}, nil
}

func (ge *GameEngine) ID() string {
	return ge.id
}

func (ge *GameEngine) Seed() int64 {
	return ge.seed
}

func (ge *GameEngine) PlayState() PlayState {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	return ge.playState
}

// Records returns a copy of the turn records so far
func (ge *GameEngine) Records() []protocol.TurnRecord {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	recs := make([]protocol.TurnRecord, len(ge.records))
	copy(recs, ge.records)
	return recs
}

// Result describes the game as it stands
func (ge *GameEngine) Result() Result {
	ge.mu.RLock()
	defer ge.mu.RUnlock()

	res := Result{
		GameID:  ge.id,
		Seed:    ge.seed,
		Players: ge.game.NumPlayers(),
		Winner:  -1,
		Turns:   len(ge.records),
		State:   ge.playState.String(),
	}
	if ge.playState == Finished {
		res.Winner, _ = ge.game.Winner()
	}
	if ge.err != nil {
		res.Error = ge.err.Error()
	}
	return res
}

// Start plays the game until a player wins. The context is checked between
// turns; a turn in progress always completes.
func (ge *GameEngine) Start(ctx context.Context) (Result, error) {
	ge.mu.Lock()
	if ge.playState != Idle {
		ge.mu.Unlock()
		return Result{}, ErrAlreadyStarted
	}
	ge.playState = InProgress
	ge.mu.Unlock()

	ev, err := ge.game.Start()
	if err != nil {
		return ge.fail(err)
	}
	ge.notifyEvents([]protocol.Event{ev})

	for !ge.game.GameOver() {
		select {
		case <-ctx.Done():
			return ge.fail(ctx.Err())
		default:
		}

		res, err := ge.game.Turn()
		if err != nil {
			return ge.fail(err)
		}

		rec := res.Record
		rec.GameID = ge.id

		ge.mu.Lock()
		ge.records = append(ge.records, rec)
		ge.mu.Unlock()

		ge.notifyEvents(res.Events)
		if err := ge.notifyRecord(rec); err != nil {
			return ge.fail(err)
		}
	}

	ge.mu.Lock()
	ge.playState = Finished
	ge.mu.Unlock()

	return ge.Result(), nil
}

func (ge *GameEngine) fail(err error) (Result, error) {
	ge.mu.Lock()
	ge.playState = Failed
	ge.err = err
	ge.mu.Unlock()

	return ge.Result(), err
}

func (ge *GameEngine) notifyEvents(events []protocol.Event) {
	for _, o := range ge.observers {
		o.OnEvents(ge.id, events)
	}
}

func (ge *GameEngine) notifyRecord(rec protocol.TurnRecord) error {
	for _, o := range ge.observers {
		if err := o.OnRecord(rec); err != nil {
			return err
		}
	}
	return nil
}
