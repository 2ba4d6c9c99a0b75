package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cfour-labs/connect4-server/game/engine"
	"github.com/cfour-labs/connect4-server/game/session"
)

// gameServiceImpl implements the GameService interface.
type gameServiceImpl struct {
	store   *session.Store
	players map[engine.PlayerID]*Player
	waiting engine.PlayerID // empty when nobody is waiting
	mu      sync.Mutex
	log     *logrus.Entry
}

// NewGameService creates a new game service instance backed by the store.
func NewGameService(store *session.Store) GameService {
	return &gameServiceImpl{
		store:   store,
		players: make(map[engine.PlayerID]*Player),
		log:     logrus.WithField("component", "service"),
	}
}

// Register creates a player and runs the matchmaking step.
func (s *gameServiceImpl) Register(ctx context.Context, name string, wantsHints bool) (*RegisterResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player := &Player{
		ID:         engine.PlayerID(uuid.NewString()),
		Name:       name,
		WantsHints: wantsHints,
	}
	s.players[player.ID] = player

	if s.waiting == "" {
		s.waiting = player.ID
		s.log.WithFields(logrus.Fields{
			"player": player.ID,
			"name":   name,
		}).Info("player waiting for opponent")
		return &RegisterResult{Player: player}, nil
	}

	// The player who arrived first is player1 and moves first.
	first := s.waiting
	s.waiting = ""

	game := s.store.Create(first, player.ID)
	s.players[first].GameID = game.ID
	player.GameID = game.ID

	s.log.WithFields(logrus.Fields{
		"game":    game.ID,
		"player1": first,
		"player2": player.ID,
	}).Info("game created")

	return &RegisterResult{
		Player: player,
		Paired: true,
		State:  s.viewLocked(game),
	}, nil
}

// Move validates turn order and applies the move through the rule engine.
func (s *gameServiceImpl) Move(ctx context.Context, playerID engine.PlayerID, column int) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players[playerID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if player.GameID == "" {
		return nil, ErrNotInGame
	}

	game, err := s.store.Get(player.GameID)
	if err != nil {
		return nil, ErrNotInGame
	}

	if game.CurrentTurn != playerID {
		return nil, ErrNotYourTurn
	}
	if !engine.Apply(game, column) {
		return nil, ErrIllegalMove
	}

	result := &MoveResult{State: s.viewLocked(game)}

	// Hint state is captured here, under the lock; the solver call itself
	// happens in the transport layer, outside it.
	if game.Status == engine.StatusActive {
		if next, ok := s.players[game.CurrentTurn]; ok && next.WantsHints {
			result.HintFor = next.ID
			result.Position = game.Moves
		}
	}

	s.log.WithFields(logrus.Fields{
		"game":   game.ID,
		"player": playerID,
		"column": column,
		"status": game.Status,
	}).Debug("move applied")

	return result, nil
}

// Disconnect clears the waiting slot, forfeits an active game, and removes
// the player from the registry.
func (s *gameServiceImpl) Disconnect(ctx context.Context, playerID engine.PlayerID) (*DisconnectResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &DisconnectResult{}

	player, ok := s.players[playerID]
	if !ok {
		return result, nil
	}

	if s.waiting == playerID {
		s.waiting = ""
		result.WasWaiting = true
	}

	if player.GameID != "" {
		if game, err := s.store.ForceForfeit(player.GameID, playerID); err == nil {
			result.Forfeited = s.viewLocked(game)
			result.Opponent = game.Opponent(playerID)
			s.log.WithFields(logrus.Fields{
				"game":   game.ID,
				"loser":  playerID,
				"winner": result.Opponent,
			}).Info("game forfeited on disconnect")
		} else if !errors.Is(err, session.ErrGameOver) {
			s.log.WithError(err).WithField("player", playerID).Warn("forfeit failed")
		}
	}

	delete(s.players, playerID)
	return result, nil
}

// GameView returns a snapshot of one game.
func (s *gameServiceImpl) GameView(ctx context.Context, gameID engine.GameID) (*GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.store.Get(gameID)
	if err != nil {
		return nil, err
	}
	return s.viewLocked(game), nil
}

// ListGames returns snapshots of every stored game.
func (s *gameServiceImpl) ListGames(ctx context.Context) ([]*GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	games := s.store.List()
	views := make([]*GameView, 0, len(games))
	for _, game := range games {
		views = append(views, s.viewLocked(game))
	}
	return views, nil
}

// viewLocked builds a read-only snapshot with display names attached.
// Callers must hold s.mu. Names of players that already left resolve to "".
func (s *gameServiceImpl) viewLocked(game *engine.Game) *GameView {
	view := &GameView{
		ID:          game.ID,
		Player1:     game.Player1,
		Player2:     game.Player2,
		CurrentTurn: game.CurrentTurn,
		Board:       game.Board.Clone(),
		Moves:       game.Moves,
		Status:      game.Status,
	}
	if game.Winner != nil {
		winner := *game.Winner
		view.Winner = &winner
	}
	if p, ok := s.players[game.Player1]; ok {
		view.Player1Name = p.Name
	}
	if p, ok := s.players[game.Player2]; ok {
		view.Player2Name = p.Name
	}
	return view
}
