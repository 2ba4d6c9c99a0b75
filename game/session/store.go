package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/cfour-labs/connect4-server/game/engine"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrPlayerNotInGame = errors.New("player has no game")
	ErrGameOver        = errors.New("game is already over")
)

// Store holds all games by ID plus a reverse index from player ID to game ID.
type Store struct {
	games    map[engine.GameID]*engine.Game
	byPlayer map[engine.PlayerID]engine.GameID
	mu       sync.RWMutex
}

// NewStore creates an empty game store.
func NewStore() *Store {
	return &Store{
		games:    make(map[engine.GameID]*engine.Game),
		byPlayer: make(map[engine.PlayerID]engine.GameID),
	}
}

// Create allocates a new active game between two players, with p1 to move
// first, and links both players to it.
func (s *Store) Create(p1, p2 engine.PlayerID) *engine.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := engine.NewGame(engine.GameID(uuid.NewString()), p1, p2)
	s.games[game.ID] = game
	s.byPlayer[p1] = game.ID
	s.byPlayer[p2] = game.ID
	return game
}

// Get retrieves a game by ID.
func (s *Store) Get(id engine.GameID) (*engine.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// ByPlayer retrieves the game a player is linked to.
func (s *Store) ByPlayer(p engine.PlayerID) (*engine.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byPlayer[p]
	if !ok {
		return nil, ErrPlayerNotInGame
	}
	game, ok := s.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// ForceForfeit ends an active game immediately: the loser's opponent wins
// regardless of whose turn it is. Returns the terminal game.
func (s *Store) ForceForfeit(id engine.GameID, loser engine.PlayerID) (*engine.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	if game.Status != engine.StatusActive {
		return nil, ErrGameOver
	}

	game.Status = engine.StatusFinished
	winner := game.Opponent(loser)
	game.Winner = &winner
	return game, nil
}

// List returns all stored games.
func (s *Store) List() []*engine.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*engine.Game, 0, len(s.games))
	for _, game := range s.games {
		result = append(result, game)
	}
	return result
}

// Count returns the number of stored games.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
