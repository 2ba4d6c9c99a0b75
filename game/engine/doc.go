// Package engine provides the core game logic for Connect Four.
//
// The engine package implements the game mechanics including:
//   - Move legality and gravity-based piece placement
//   - Win detection across all four board axes
//   - Draw detection on a full board
//   - Turn order tracking between the two players
//
// Core Types:
//
// Game represents one match between two players: the board, the move
// history, whose turn it is, and the terminal status once the game ends.
// Cell is the content of a single board position.
//
// Usage:
//
//	game := engine.NewGame(id, player1, player2)
//
//	if engine.Apply(game, 3) {
//		// piece placed, game.Status / game.CurrentTurn updated
//	}
//
// Game Rules:
//
// Two players alternate dropping pieces into one of seven columns; pieces
// fall to the lowest empty row. The first player to line up four pieces
// horizontally, vertically, or diagonally wins. If the board fills with no
// winning line, the game is a draw.
//
// The package is pure logic: it performs no I/O and holds no state beyond
// the Game values passed to it.
package engine
