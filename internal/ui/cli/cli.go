// Package cli implements the command-line interaction of the binaries: reading moves from a human
// and printing the outcome of a match.
package cli

import (
	"bufio"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/neverfolds/connect383/internal/generics"
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/neverfolds/connect383/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// MaxAttempts at reading a valid move before giving up.
const MaxAttempts = 10

// UI reads commands from a reader and writes prompts to a writer.
type UI struct {
	reader *bufio.Reader
	writer io.Writer
	color  bool
}

// New returns a UI on stdin/stdout. Colors are used if requested and stdout is a terminal.
func New(color bool) *UI {
	return NewWithIO(os.Stdin, os.Stdout, color && term.IsTerminal(int(os.Stdout.Fd())))
}

// NewWithIO returns a UI reading from r and writing to w.
func NewWithIO(r io.Reader, w io.Writer, color bool) *UI {
	return &UI{reader: bufio.NewReader(r), writer: w, color: color}
}

// ReadMove prompts for one of the legal moves of the state and returns the corresponding successor.
// Invalid inputs are ignored and the prompt is repeated, up to MaxAttempts times.
func (ui *UI) ReadMove(s searchers.GameState) (searchers.Successor, error) {
	successors := s.Successors()
	if len(successors) == 0 {
		return searchers.Successor{}, searchers.ErrorfInvalidState("no moves available")
	}
	moveToSuccessor := make(map[searchers.Move]searchers.Successor, len(successors))
	for _, successor := range successors {
		moveToSuccessor[successor.Move] = successor
	}
	moves := slices.Collect(generics.SortedKeys(moveToSuccessor))
	prompt := fmt.Sprintf("Kindly enter your move %v: ", moves)

	for range MaxAttempts {
		fmt.Fprint(ui.writer, prompt)
		line, err := ui.reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return searchers.Successor{}, errors.Wrap(err, "failed to read move")
		}
		move, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			continue
		}
		if successor, found := moveToSuccessor[searchers.Move(move)]; found {
			return successor, nil
		}
	}
	return searchers.Successor{}, errors.Errorf("failed to read a valid move after %d attempts", MaxAttempts)
}

// PrintBoard prints the board layout, one row per line, with the column numbers below.
func (ui *UI) PrintBoard(b *state.Board) {
	fmt.Fprint(ui.writer, b.String())
	cols := make([]string, b.Width())
	for col := range cols {
		cols[col] = strconv.Itoa(col % 10)
	}
	fmt.Fprintln(ui.writer, strings.Join(cols, ""))
}

var (
	winnerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	drawStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// PrintWinner prints the final scores and who won.
func (ui *UI) PrintWinner(b *state.Board, names [2]string) {
	scoreX, scoreO := b.Scores()
	var msg string
	style := winnerStyle
	switch b.Winner() {
	case searchers.Maximizer:
		msg = fmt.Sprintf("X (%s) wins %d to %d", names[0], scoreX, scoreO)
	case searchers.Minimizer:
		msg = fmt.Sprintf("O (%s) wins %d to %d", names[1], scoreO, scoreX)
	default:
		msg = fmt.Sprintf("Draw, %d to %d", scoreX, scoreO)
		style = drawStyle
	}
	if ui.color {
		msg = style.Render(msg)
	}
	fmt.Fprintln(ui.writer, msg)
}
