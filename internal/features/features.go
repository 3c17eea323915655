// Package features extracts a fixed set of features from a Connect-383 board, to be used by
// the evaluators.
//
// All features are "X minus O" differences, so positive values favor the maximizer.
// Extraction only scans the board (a fixed number of cells and windows), it never looks at
// successors.
package features

import (
	"fmt"
	"github.com/neverfolds/connect383/internal/generics"
	. "github.com/neverfolds/connect383/internal/state"
	"strings"
)

// BoardId represents an enum of board features.
type BoardId uint8

const (
	// IdRunsScore is the current runs score difference: the exact utility of the board.
	IdRunsScore BoardId = iota

	// IdOpenOne is the difference in the number of open windows with exactly one piece of the player.
	// A window is MinRunLength consecutive cells with no blocked cells and no opponent pieces.
	IdOpenOne

	// IdOpenTwo is like IdOpenOne, but for windows with two pieces of the player.
	IdOpenTwo

	// IdCenter is the difference in the number of pieces in the center column(s).
	IdCenter

	// IdNumFeatureIds defined -- this must always be the last enum.
	IdNumFeatureIds
)

// BoardSpec includes the feature name and its index in the feature vector.
type BoardSpec struct {
	Id   BoardId
	Name string
}

var (
	// BoardSpecs enumerates in order the features extracted by ForBoard.
	BoardSpecs = [IdNumFeatureIds]BoardSpec{
		{IdRunsScore, "RunsScore"},
		{IdOpenOne, "OpenOne"},
		{IdOpenTwo, "OpenTwo"},
		{IdCenter, "Center"},
	}
)

// BoardFeaturesDim is the dimension of the vector returned by ForBoard.
const BoardFeaturesDim = int(IdNumFeatureIds)

// ForBoard returns the features of the board, indexed by BoardId.
func ForBoard(b *Board) []float32 {
	f := make([]float32, BoardFeaturesDim)
	scoreX, scoreO := b.Scores()
	f[IdRunsScore] = float32(scoreX - scoreO)

	b.Windows(func(_ Window, numX, numO, _, numBlocked int) {
		if numBlocked > 0 || (numX > 0 && numO > 0) {
			return
		}
		count, sign := numX, float32(1)
		if numO > 0 {
			count, sign = numO, -1
		}
		switch count {
		case 1:
			f[IdOpenOne] += sign
		case 2:
			f[IdOpenTwo] += sign
		}
	})

	for _, col := range centerColumns(b.Width()) {
		for row := range b.Height() {
			if cell := b.At(row, col); cell.IsPiece() {
				f[IdCenter] += float32(cell.Player())
			}
		}
	}
	return f
}

// centerColumns returns the middle column, or the two middle columns for even widths.
func centerColumns(width int) []int {
	if width%2 == 1 {
		return []int{width / 2}
	}
	return []int{width/2 - 1, width / 2}
}

// PrettyPrint returns the features one per line, with their names.
func PrettyPrint(f []float32) string {
	return strings.Join(generics.SliceMap(BoardSpecs[:], func(spec BoardSpec) string {
		return fmt.Sprintf("\t%s: %g", spec.Name, f[spec.Id])
	}), "\n")
}
