// Package service coordinates players, matchmaking, and game play.
//
// The service package implements:
//   - The player registry (ID, display name, hint preference)
//   - The single-slot matchmaking queue
//   - Turn-checked move handling against the rule engine
//   - Forfeit and cleanup when a player disconnects
//
// Core Types:
//
// GameService defines the operations the transports call into, implemented
// by the unexported service type. GameView is the read-only state snapshot
// broadcast to clients, with both display names attached.
//
// Concurrency:
//
// Every GameService operation runs under a single mutex, so registry,
// waiting slot, and store mutations never interleave. No operation blocks
// on I/O; in particular the solver subprocess is invoked by the transport
// layer after the relevant state has been captured, never under this lock.
//
// Usage:
//
//	svc := service.NewGameService(session.NewStore())
//
//	res, _ := svc.Register(ctx, "alice", true)
//	if res.Paired {
//		// res.State is the fresh game, res.Player.ID is player2
//	}
package service
