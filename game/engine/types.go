package engine

// PlayerID uniquely identifies a registered player.
type PlayerID string

// GameID uniquely identifies a game.
type GameID string

// Board dimensions and the winning line length.
const (
	Rows      = 6
	Cols      = 7
	WinLength = 4
)

// Cell is the content of a single board position.
type Cell int

const (
	Empty Cell = iota
	One
	Two
)

// Other returns the opposing player's mark. Empty maps to itself.
func (c Cell) Other() Cell {
	switch c {
	case One:
		return Two
	case Two:
		return One
	default:
		return Empty
	}
}

// Status describes the lifecycle phase of a game. Transitions are one-way:
// active games end as finished or draw and never reopen.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
	StatusDraw     Status = "draw"
)

// Board is a Rows x Cols grid. Row 0 is the top row; pieces land in the
// highest-index empty row of a column.
type Board [][]Cell

// NewBoard creates an empty game board.
func NewBoard() Board {
	board := make(Board, Rows)
	for r := range board {
		board[r] = make([]Cell, Cols)
	}
	return board
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	clone := make(Board, len(b))
	for r := range b {
		clone[r] = make([]Cell, len(b[r]))
		copy(clone[r], b[r])
	}
	return clone
}

// Game represents the complete state of one match.
type Game struct {
	ID          GameID    `json:"id"`
	Player1     PlayerID  `json:"player1"`
	Player2     PlayerID  `json:"player2"`
	CurrentTurn PlayerID  `json:"current_turn"`
	Board       Board     `json:"board"`
	Moves       string    `json:"moves"`
	Status      Status    `json:"status"`
	Winner      *PlayerID `json:"winner"`
}

// NewGame creates an active game with an empty board. p1 moves first.
func NewGame(id GameID, p1, p2 PlayerID) *Game {
	return &Game{
		ID:          id,
		Player1:     p1,
		Player2:     p2,
		CurrentTurn: p1,
		Board:       NewBoard(),
		Status:      StatusActive,
	}
}

// Opponent returns the other player of the game.
func (g *Game) Opponent(p PlayerID) PlayerID {
	if p == g.Player1 {
		return g.Player2
	}
	return g.Player1
}

// markToMove returns the mark of the player whose turn it is.
func (g *Game) markToMove() Cell {
	if g.CurrentTurn == g.Player1 {
		return One
	}
	return Two
}
