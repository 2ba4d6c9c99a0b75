// Package mcp provides a Model Context Protocol interface to the Connect
// Four server.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions proxying the REST API
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - analyse_position: Score every column of a position with the solver
//   - list_games: List all games on the server
//   - game_state: Get one game's board, turn and result
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Live play stays on the WebSocket endpoint; the MCP surface is read-only
// plus analysis.
package mcp
