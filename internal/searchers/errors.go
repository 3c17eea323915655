package searchers

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidState is returned when a GameState breaks its contract, e.g. a non-terminal
	// state without successors, or when the Selector is asked to move from a finished game.
	ErrInvalidState = errors.New("invalid game state")

	// ErrConfiguration is returned when a searcher is built with invalid parameters, e.g.
	// a negative depth limit.
	ErrConfiguration = errors.New("invalid searcher configuration")

	// ErrRecursionLimit is returned when a search goes deeper than its configured max plies.
	ErrRecursionLimit = errors.New("search recursion limit reached")
)

// ErrorfInvalidState returns an error wrapping ErrInvalidState with the formatted message.
func ErrorfInvalidState(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidState, format, args...)
}

// ErrorfConfiguration returns an error wrapping ErrConfiguration with the formatted message.
func ErrorfConfiguration(format string, args ...any) error {
	return errors.Wrapf(ErrConfiguration, format, args...)
}

// DefaultMaxPlies is the default recursion guard of the searchers. It is far above the number of
// cells of any board this engine is meant for.
const DefaultMaxPlies = 512

// CheckPlies returns ErrRecursionLimit if plies exceeds maxPlies. A maxPlies <= 0 disables the check.
func CheckPlies(plies, maxPlies int) error {
	if maxPlies > 0 && plies > maxPlies {
		return errors.Wrapf(ErrRecursionLimit, "search reached %d plies, max is %d", plies, maxPlies)
	}
	return nil
}
