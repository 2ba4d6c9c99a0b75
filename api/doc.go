// Package api provides the HTTP surface of the Connect Four server.
//
// The api package implements:
//   - Position analysis endpoint backed by the external solver
//   - Read-only game inspection endpoints
//   - WebSocket upgrade handling for live play
//   - Static file serving
//
// Endpoints:
//
// Analysis:
//   - GET /analyse/{position} - Evaluate every column of a position
//
// Games:
//   - GET /api/games - List all games
//   - GET /api/games/{id} - Get one game's state
//   - GET /api/health - Liveness check
//
// Play:
//   - /ws - WebSocket endpoint for matchmaking and moves
package api
