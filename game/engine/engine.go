package engine

import "strconv"

// axes lists the four line directions as (row, col) deltas. Win detection
// walks each axis in both directions from the placed cell.
var axes = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal
	{1, -1}, // anti-diagonal
}

// IsLegal reports whether a piece can be dropped into the column: the index
// is in range and the top cell of the column is still empty. Out-of-range
// columns are a normal false, never an error.
func IsLegal(board Board, column int) bool {
	return column >= 0 && column < Cols && board[0][column] == Empty
}

// Apply attempts the move for the player on turn and reports whether it was
// accepted. Rejected moves leave the game untouched. An accepted move places
// the piece, appends the 1-based column digit to Moves, and then settles on
// exactly one outcome: a win for the mover, a draw on a full board, or the
// turn passing to the other player.
func Apply(g *Game, column int) bool {
	if g.Status != StatusActive || !IsLegal(g.Board, column) {
		return false
	}

	row := lowestEmptyRow(g.Board, column)
	mark := g.markToMove()
	g.Board[row][column] = mark
	g.Moves += strconv.Itoa(column + 1)

	switch {
	case winningMove(g.Board, row, column, mark):
		g.Status = StatusFinished
		winner := g.CurrentTurn
		g.Winner = &winner
	case boardFull(g.Board):
		g.Status = StatusDraw
	default:
		g.CurrentTurn = g.Opponent(g.CurrentTurn)
	}

	return true
}

// lowestEmptyRow scans the column from the bottom row upward. Callers must
// check IsLegal first.
func lowestEmptyRow(board Board, column int) int {
	for row := Rows - 1; row >= 0; row-- {
		if board[row][column] == Empty {
			return row
		}
	}
	return -1
}

// winningMove reports whether the piece just placed at (row, col) completes
// a line of at least WinLength. For each axis the contiguous run through the
// placed cell is counted in both directions.
func winningMove(board Board, row, col int, mark Cell) bool {
	for _, axis := range axes {
		dr, dc := axis[0], axis[1]
		count := 1
		for _, sign := range [2]int{1, -1} {
			r, c := row+dr*sign, col+dc*sign
			for r >= 0 && r < Rows && c >= 0 && c < Cols && board[r][c] == mark {
				count++
				r, c = r+dr*sign, c+dc*sign
			}
		}
		if count >= WinLength {
			return true
		}
	}
	return false
}

// boardFull reports whether every column's top cell is occupied.
func boardFull(board Board) bool {
	for col := 0; col < Cols; col++ {
		if board[0][col] == Empty {
			return false
		}
	}
	return true
}
