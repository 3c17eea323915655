package state

import (
	"fmt"
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/pkg/errors"
	"regexp"
	"strconv"
	"strings"
)

var cellLetters = map[Cell]byte{Empty: '.', X: 'X', O: 'O', Blocked: '#'}

// Letter used for the cell in a layout: '.', 'X', 'O' or '#'.
func (c Cell) Letter() string {
	letter, found := cellLetters[c]
	if !found {
		return "?"
	}
	return string(letter)
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return c.Letter()
}

// Layout returns the board as rows of cell letters joined by "/", top row first.
// It can be read back with Parse.
func (b *Board) Layout() string {
	return strings.Join(b.rows(), "/")
}

// String returns the board as one line per row, top row first, followed by the scores.
func (b *Board) String() string {
	return fmt.Sprintf("%s\nX=%d O=%d, next=%s\n", strings.Join(b.rows(), "\n"), b.scoreX, b.scoreO, CellFor(b.next))
}

func (b *Board) rows() []string {
	rows := make([]string, b.height)
	var sb strings.Builder
	for row := range b.height {
		sb.Reset()
		for col := range b.width {
			sb.WriteString(b.At(row, col).Letter())
		}
		rows[row] = sb.String()
	}
	return rows
}

// Parse a board from its layout: rows of cells, top row first, separated by "/" or new lines.
// Cells are '.' (empty), 'X', 'O' (case-insensitive) or '#' (blocked). Spaces are ignored.
//
// The next player is derived from the number of pieces: X if both players have played the same
// number of pieces, O if X played one more.
//
// Errors are returned for ragged rows, unknown cells, pieces with an empty cell below (they would
// have fallen), and piece counts that can't happen in a match.
func Parse(layout string) (*Board, error) {
	layout = strings.ReplaceAll(layout, "\n", "/")
	var rows []string
	for _, row := range strings.Split(layout, "/") {
		row = strings.Join(strings.Fields(row), "")
		if row != "" {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, errors.New("empty board layout")
	}
	b, err := NewBoard(len(rows[0]), len(rows))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse layout %q", layout)
	}

	var numX, numO int
	for row, rowStr := range rows {
		if len(rowStr) != b.width {
			return nil, errors.Errorf("row %d of layout %q has %d cells, but the first row has %d",
				row, layout, len(rowStr), b.width)
		}
		for col, letter := range rowStr {
			var cell Cell
			switch letter {
			case '.':
				cell = Empty
			case 'X', 'x':
				cell = X
				numX++
			case 'O', 'o':
				cell = O
				numO++
			case '#':
				cell = Blocked
			default:
				return nil, errors.Errorf("unknown cell %q at row %d, column %d of layout %q", letter, row, col, layout)
			}
			b.cells[row*b.width+col] = cell
		}
	}

	// Pieces must rest on something.
	for row := range b.height - 1 {
		for col := range b.width {
			if b.At(row, col).IsPiece() && b.At(row+1, col) == Empty {
				return nil, errors.Errorf("piece at row %d, column %d of layout %q has an empty cell below it",
					row, col, layout)
			}
		}
	}

	switch numX - numO {
	case 0:
		b.next = searchers.Maximizer
	case 1:
		b.next = searchers.Minimizer
	default:
		return nil, errors.Errorf("layout %q has %d X and %d O pieces: X plays first, so it must have the same or one more",
			layout, numX, numO)
	}
	b.MoveNumber = numX + numO
	b.scoreX, b.scoreO = b.runScores()
	return b, nil
}

var dimensionsRegexp = regexp.MustCompile(`^\s*(\d+)\s*[xX]\s*(\d+)\s*$`)

// FromConfig creates a board from either its dimensions ("<width>x<height>", e.g. "5x4") or
// a layout accepted by Parse.
func FromConfig(config string) (*Board, error) {
	if config == "" {
		return NewBoard(DefaultWidth, DefaultHeight)
	}
	if matches := dimensionsRegexp.FindStringSubmatch(config); matches != nil {
		width, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse board width in %q", config)
		}
		height, err := strconv.Atoi(matches[2])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse board height in %q", config)
		}
		return NewBoard(width, height)
	}
	return Parse(config)
}
