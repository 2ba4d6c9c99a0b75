package service

import (
	"github.com/cfour-labs/connect4-server/game/engine"
)

// Player is one registered connection's identity.
type Player struct {
	ID         engine.PlayerID
	Name       string
	WantsHints bool
	GameID     engine.GameID // empty until paired
}

// GameView is the read-only game snapshot sent to clients. The board is a
// deep copy so views can be marshalled after the live game has moved on.
type GameView struct {
	ID          engine.GameID    `json:"id"`
	Player1     engine.PlayerID  `json:"player1"`
	Player2     engine.PlayerID  `json:"player2"`
	Player1Name string           `json:"player1_name"`
	Player2Name string           `json:"player2_name"`
	CurrentTurn engine.PlayerID  `json:"current_turn"`
	Board       engine.Board     `json:"board"`
	Moves       string           `json:"moves"`
	Status      engine.Status    `json:"status"`
	Winner      *engine.PlayerID `json:"winner"`
}

// RegisterResult reports the outcome of a registration.
type RegisterResult struct {
	Player *Player
	Paired bool
	State  *GameView // set only when Paired
}

// MoveResult reports an accepted move. When the game is still running and
// the player now on turn asked for hints, HintFor and Position carry what
// the transport needs to issue the analysis request after broadcasting.
type MoveResult struct {
	State    *GameView
	HintFor  engine.PlayerID
	Position string
}

// DisconnectResult reports the cleanup performed for a departing player.
type DisconnectResult struct {
	WasWaiting bool
	Forfeited  *GameView       // terminal state to broadcast, nil if no active game
	Opponent   engine.PlayerID // remaining player when Forfeited is set
}
