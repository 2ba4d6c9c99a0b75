package service

import (
	"context"
	"errors"

	"github.com/cfour-labs/connect4-server/game/engine"
)

var (
	ErrUnknownPlayer = errors.New("player is not registered")
	ErrNotInGame     = errors.New("player has no active game")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrIllegalMove   = errors.New("invalid move")
)

// GameService defines all player-facing game operations.
type GameService interface {
	// Register creates a player and either parks it in the waiting slot or
	// pairs it with the player already waiting.
	Register(ctx context.Context, name string, wantsHints bool) (*RegisterResult, error)

	// Move applies one move for the player, enforcing turn order.
	Move(ctx context.Context, playerID engine.PlayerID, column int) (*MoveResult, error)

	// Disconnect removes a player: the waiting slot is cleared if they held
	// it, and any active game is forfeited to the opponent. Safe to call for
	// unknown players and idempotent per player.
	Disconnect(ctx context.Context, playerID engine.PlayerID) (*DisconnectResult, error)

	// GameView returns a read-only snapshot of one game.
	GameView(ctx context.Context, gameID engine.GameID) (*GameView, error)

	// ListGames returns read-only snapshots of all games.
	ListGames(ctx context.Context) ([]*GameView, error)
}
