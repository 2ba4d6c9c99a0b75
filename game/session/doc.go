// Package session provides storage for in-progress Connect Four games.
//
// The session package implements:
//   - Thread-safe game storage and retrieval
//   - A reverse index from player ID to their active game
//   - Forced forfeits when a player's connection is lost
//
// Core Types:
//
// Store is the single owner of all game state. Games are created by pairing
// two players and are mutated only through the rule engine (via the game
// service) or ForceForfeit. A player is linked to at most one active game.
//
// Usage:
//
//	store := session.NewStore()
//
//	game := store.Create(player1, player2)
//
//	game, err := store.ByPlayer(player1)
//	if err != nil {
//		// player has no game
//	}
//
// Terminated games stay in the store read-only; the server process is the
// only lifetime that matters since games do not persist across restarts.
package session
