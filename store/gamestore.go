package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/canary/engine"
)

var (
	ErrNilGame         = errors.New("game is nil")
	ErrFnDuplicateGame = func(gameID string) error {
		return fmt.Errorf("game with id \"%s\" already exists", gameID)
	}
)

type GameStore interface {
	FindGame(gameID string) *engine.GameEngine
	AddGame(ge *engine.GameEngine) error
	Games() []*engine.GameEngine
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]*engine.GameEngine
	order []string
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]*engine.GameEngine{},
		order: []string{},
	}
}

// FindGame returns the game with the given ID, or nil
func (s *InMemoryGameStore) FindGame(ID string) *engine.GameEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[ID]
	if !ok {
		return nil
	}
	return game
}

func (s *InMemoryGameStore) AddGame(game *engine.GameEngine) error {
	if game == nil {
		return ErrNilGame
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.ID()]; exists {
		return ErrFnDuplicateGame(game.ID())
	}

	s.games[game.ID()] = game
	s.order = append(s.order, game.ID())
	return nil
}

// Games returns every stored game, oldest first
func (s *InMemoryGameStore) Games() []*engine.GameEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]*engine.GameEngine, 0, len(s.order))
	for _, id := range s.order {
		games = append(games, s.games[id])
	}
	return games
}
