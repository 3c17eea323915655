// Package spinning shows a spinning symbol with the elapsed time while an AI player is thinking,
// and handles Ctrl+C for the binaries.
package spinning

import (
	"context"
	"fmt"
	"io"
	"k8s.io/klog/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

var (
	ThemeAscii = []rune("|/-\\")
	ThemeDots  = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

	// Theme used by new spinners. Defaults to ThemeAscii.
	Theme = ThemeAscii

	// Period between frames.
	Period = 200 * time.Millisecond
)

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
	clearLine  = "\r\033[K"
)

// SafeInterrupt captures SigInt (Ctrl+C) and SigTerm and calls onInterrupt in a separate goroutine.
// If the program hasn't exited after gracePeriod, it resets the terminal and exits.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		Reset(os.Stdout)
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset(w io.Writer) {
	fmt.Fprint(w, showCursor+"\033[39;49;0m\n")
}

// Spinning redraws a line with "<label> <symbol> <elapsed>" until Done is called.
type Spinning struct {
	wg     sync.WaitGroup
	cancel func()
	start  time.Time
}

// New starts a spinner on w, in a separate goroutine. It stops when Spinning.Done is called or ctx is
// cancelled, and it clears its line when it stops.
func New(ctx context.Context, w io.Writer, label string) *Spinning {
	s := &Spinning{start: time.Now()}
	ctx, s.cancel = context.WithCancel(ctx)
	theme := Theme
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Period)
		defer ticker.Stop()
		fmt.Fprint(w, hideCursor)
		for frame := 0; ; frame++ {
			fmt.Fprintf(w, "%s%s %c %.1fs", clearLine, label, theme[frame%len(theme)], time.Since(s.start).Seconds())
			select {
			case <-ctx.Done():
				fmt.Fprint(w, clearLine+showCursor)
				return
			case <-ticker.C:
			}
		}
	}()
	return s
}

// Done stops the spinner, waits for it to clear its line and returns the time elapsed since New.
func (s *Spinning) Done() time.Duration {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
	return time.Since(s.start)
}
