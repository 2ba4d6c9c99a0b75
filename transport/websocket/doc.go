// Package websocket carries the game protocol over WebSocket connections.
//
// The Hub runs a single event loop that owns connection registration,
// inbound message dispatch, and hint delivery, so per-connection handlers
// never mutate shared state concurrently. Each connection gets a read pump
// and a write pump goroutine in the usual gorilla/websocket arrangement.
//
// Protocol (JSON, one object per WebSocket text message):
//
//	client -> server
//	  {"type": "register", "name": "...", "wants_hints": true}
//	  {"type": "move", "column": 3}            // 0-based
//
//	server -> client
//	  {"type": "waiting", "message": "..."}
//	  {"type": "game_state", "state": {...}}   // both players
//	  {"type": "hint", "analysis": {...}}      // player on turn only
//	  {"type": "error", "message": "..."}      // originator only
//
// The post-move game_state broadcast is queued to both clients before any
// hint analysis is launched, and hints for clients that disconnected in the
// meantime are dropped. Disconnect cleanup (forfeit, waiting-slot release,
// registry removal) runs exactly once per connection.
package websocket
