package state

// Direction of a straight line in the board, as row and column deltas.
type Direction [2]int

// Directions enumerates the 4 directions runs are counted: horizontal, vertical and the 2 diagonals.
// The opposite directions are not included, since they describe the same lines.
var Directions = [4]Direction{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// runScores returns the total runs score for X and O: each maximal run of n >= MinRunLength
// pieces scores n*n for its owner.
func (b *Board) runScores() (scoreX, scoreO int) {
	for _, run := range b.Runs(MinRunLength) {
		if run.Cell == X {
			scoreX += run.Length * run.Length
		} else {
			scoreO += run.Length * run.Length
		}
	}
	return
}

// Run is a maximal straight line of pieces of the same player.
type Run struct {
	Cell      Cell
	Row, Col  int
	Direction Direction
	Length    int
}

// Runs returns all maximal runs of at least minLength pieces, in all Directions.
// Blocked cells, empty cells and the board edges break runs.
func (b *Board) Runs(minLength int) []Run {
	var runs []Run
	for _, dir := range Directions {
		for row := range b.height {
			for col := range b.width {
				cell := b.At(row, col)
				if !cell.IsPiece() {
					continue
				}
				// Only start counting at the beginning of a run.
				prevRow, prevCol := row-dir[0], col-dir[1]
				if b.InBoard(prevRow, prevCol) && b.At(prevRow, prevCol) == cell {
					continue
				}
				length := 1
				for r, c := row+dir[0], col+dir[1]; b.InBoard(r, c) && b.At(r, c) == cell; r, c = r+dir[0], c+dir[1] {
					length++
				}
				if length >= minLength {
					runs = append(runs, Run{Cell: cell, Row: row, Col: col, Direction: dir, Length: length})
				}
			}
		}
	}
	return runs
}

// Window is a segment of MinRunLength consecutive cells in one of the Directions.
type Window struct {
	Row, Col  int
	Direction Direction
}

// Windows calls fn for every segment of MinRunLength cells that fits in the board, with the counts of
// cells of each kind in it.
func (b *Board) Windows(fn func(w Window, numX, numO, numEmpty, numBlocked int)) {
	for _, dir := range Directions {
		for row := range b.height {
			for col := range b.width {
				endRow, endCol := row+dir[0]*(MinRunLength-1), col+dir[1]*(MinRunLength-1)
				if !b.InBoard(endRow, endCol) {
					continue
				}
				var numX, numO, numEmpty, numBlocked int
				for ii := range MinRunLength {
					switch b.At(row+ii*dir[0], col+ii*dir[1]) {
					case X:
						numX++
					case O:
						numO++
					case Empty:
						numEmpty++
					default:
						numBlocked++
					}
				}
				fn(Window{Row: row, Col: col, Direction: dir}, numX, numO, numEmpty, numBlocked)
			}
		}
	}
}
