// Package state implements the Connect-383 board: a Connect-Four variant played on a configurable
// board, where the game only ends when the board is full and the score is given by the length of
// the runs of pieces of each player.
//
// Board implements searchers.GameState.
package state

import (
	"github.com/gomlx/exceptions"
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/pkg/errors"
)

// Cell content of the board.
type Cell int8

const (
	Empty Cell = 0

	// X is a piece of the first player, the maximizer.
	X Cell = 1

	// O is a piece of the second player, the minimizer.
	O Cell = -1

	// Blocked cells can't be played, and they break runs.
	Blocked Cell = 2
)

// CellFor returns the piece of the given player.
func CellFor(player searchers.Player) Cell {
	if player == searchers.Maximizer {
		return X
	}
	return O
}

// Player returns the owner of the cell: searchers.Maximizer for X, searchers.Minimizer for O.
// It panics for Empty or Blocked cells.
func (c Cell) Player() searchers.Player {
	switch c {
	case X:
		return searchers.Maximizer
	case O:
		return searchers.Minimizer
	}
	exceptions.Panicf("cell %q has no player", c.Letter())
	return 0
}

// IsPiece returns whether the cell holds a piece of one of the players.
func (c Cell) IsPiece() bool {
	return c == X || c == O
}

const (
	// MinRunLength is the shortest run that scores.
	MinRunLength = 3

	// DefaultWidth and DefaultHeight of a board.
	DefaultWidth  = 5
	DefaultHeight = 4

	// MaxDimension of the board, in either direction.
	MaxDimension = 32
)

// Board is one position of a Connect-383 match. Once created a Board is not changed: Act returns
// a new Board.
type Board struct {
	width, height int

	// cells in row-major order, row 0 is the top.
	cells []Cell

	next searchers.Player

	// MoveNumber is the number of pieces played so far.
	MoveNumber int

	// scores cached on creation: runs score of X and O.
	scoreX, scoreO int
}

// Assert Board is a searchers.GameState.
var _ searchers.GameState = (*Board)(nil)

// NewBoard creates an empty board with the given dimensions. X plays first.
func NewBoard(width, height int) (*Board, error) {
	if width < 1 || height < 1 || width > MaxDimension || height > MaxDimension {
		return nil, errors.Errorf("invalid board dimensions %dx%d: each must be between 1 and %d",
			width, height, MaxDimension)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		next:   searchers.Maximizer,
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// At returns the cell at the given row (0 is the top) and column.
func (b *Board) At(row, col int) Cell {
	return b.cells[row*b.width+col]
}

// InBoard returns whether row and col are valid coordinates.
func (b *Board) InBoard(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// Playable returns whether a piece can be dropped in the column.
func (b *Board) Playable(col int) bool {
	return col >= 0 && col < b.width && b.cells[col] == Empty
}

// LegalMoves returns the playable columns in ascending order.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, b.width)
	for col := range b.width {
		if b.Playable(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

// LandingRow returns the row where a piece dropped in col lands: the lowest empty cell above the
// first non-empty cell from the top. It returns -1 if the column is not playable.
func (b *Board) LandingRow(col int) int {
	if !b.Playable(col) {
		return -1
	}
	row := 0
	for row+1 < b.height && b.At(row+1, col) == Empty {
		row++
	}
	return row
}

// Act returns a new board after the next player drops a piece in col.
// It panics if the column is not playable: callers should only play LegalMoves.
func (b *Board) Act(col int) *Board {
	row := b.LandingRow(col)
	if row < 0 {
		exceptions.Panicf("column %d is not playable on a %dx%d board", col, b.width, b.height)
	}
	newBoard := &Board{
		width:      b.width,
		height:     b.height,
		cells:      make([]Cell, len(b.cells)),
		next:       b.next.Opponent(),
		MoveNumber: b.MoveNumber + 1,
	}
	copy(newBoard.cells, b.cells)
	newBoard.cells[row*b.width+col] = CellFor(b.next)
	newBoard.scoreX, newBoard.scoreO = newBoard.runScores()
	return newBoard
}

// NextPlayer implements searchers.GameState.
func (b *Board) NextPlayer() searchers.Player {
	return b.next
}

// IsTerminal implements searchers.GameState: the match is over when no column is playable.
func (b *Board) IsTerminal() bool {
	for col := range b.width {
		if b.cells[col] == Empty {
			return false
		}
	}
	return true
}

// Utility implements searchers.GameState: the score of X minus the score of O.
// It is defined for every board, but it is only final for terminal boards.
func (b *Board) Utility() searchers.Value {
	return searchers.Value(b.scoreX - b.scoreO)
}

// Scores returns the runs score of each player.
func (b *Board) Scores() (x, o int) {
	return b.scoreX, b.scoreO
}

// Successors implements searchers.GameState: one successor per playable column, in ascending
// column order.
func (b *Board) Successors() []searchers.Successor {
	moves := b.LegalMoves()
	successors := make([]searchers.Successor, len(moves))
	for ii, col := range moves {
		successors[ii] = searchers.Successor{Move: searchers.Move(col), State: b.Act(col)}
	}
	return successors
}

// Winner returns the player with the higher score, or 0 for a draw.
func (b *Board) Winner() searchers.Player {
	switch {
	case b.scoreX > b.scoreO:
		return searchers.Maximizer
	case b.scoreO > b.scoreX:
		return searchers.Minimizer
	}
	return 0
}
