// Package players provides a factory of players (agents) from configuration strings.
// It also allows player providers to register themselves, see package players/default.
package players

import (
	"github.com/neverfolds/connect383/internal/generics"
	"github.com/neverfolds/connect383/internal/parameters"
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/pkg/errors"
	"regexp"
	"slices"
	"strings"
)

// Player is anything that is able to play the game.
type Player interface {
	// Play returns the move chosen, the next state (after the move is taken) and the value the player
	// expects for it, if it has one (0 otherwise).
	Play(state searchers.GameState) (move searchers.Move, next searchers.GameState, value searchers.Value, err error)

	// String returns the player's name, used for logging.
	String() string
}

// Module creates players from their parameters. NewPlayer must pop from params every parameter it
// uses: parameters left over are reported as errors by New.
type Module interface {
	NewPlayer(params parameters.Params) (Player, error)
}

// ModuleFunc adapts a function to the Module interface.
type ModuleFunc func(params parameters.Params) (Player, error)

// NewPlayer implements Module.
func (fn ModuleFunc) NewPlayer(params parameters.Params) (Player, error) {
	return fn(params)
}

var (
	// Registered modules.
	keywordToModules = make(map[string]Module)
)

// RegisterModule so it can be used by any of the front-ends.
func RegisterModule(name string, module Module) {
	keywordToModules[name] = module
}

// RegisteredModules returns the names of the registered modules, sorted.
func RegisteredModules() []string {
	return slices.Collect(generics.SortedKeys(keywordToModules))
}

var (
	// DefaultPlayerConfig is used if no configuration was given.
	DefaultPlayerConfig = "look3"

	// tagDepthRegexp matches module names with a depth suffix, e.g. "look3" or "alt2".
	tagDepthRegexp = regexp.MustCompile(`^([a-z]+?)(\d+)$`)
)

// New creates a new player given the configuration string.
//
// Args:
//
//	config: the module name, optionally followed by a colon (":") and a comma-separated list of
//		parameters with optional values associated. A numeric suffix on the module name sets the "depth"
//		parameter, so "look3" is the same as "look:depth=3".
//		If empty, the default is given by DefaultPlayerConfig.
//
// Examples: "random", "random:seed=7", "human", "mini", "prune", "look3", "alt2,prune=false",
// "look:depth=4,weights=1;0.5;2;0.25;0".
func New(config string) (Player, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}
	if len(keywordToModules) == 0 {
		return nil, errors.New("no registered players. Perhaps you need to import _ \"github.com/neverfolds/connect383/internal/players/default\" to your binary ?")
	}

	// Find moduleName.
	moduleName, paramsConfig := config, ""
	if moduleSplit := strings.IndexAny(config, ":,"); moduleSplit != -1 {
		moduleName, paramsConfig = config[:moduleSplit], config[moduleSplit+1:]
	}
	params := parameters.NewFromConfigString(paramsConfig)
	if matches := tagDepthRegexp.FindStringSubmatch(moduleName); matches != nil {
		if _, found := keywordToModules[moduleName]; !found {
			moduleName = matches[1]
			if _, found := params["depth"]; found {
				return nil, errors.Errorf("player %q sets depth twice", config)
			}
			params["depth"] = matches[2]
		}
	}

	module, ok := keywordToModules[moduleName]
	if !ok {
		return nil, errors.Errorf("unknown player %q, registered players are %q", moduleName, RegisteredModules())
	}
	player, err := module.NewPlayer(params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create player %q", config)
	}
	if err := parameters.CheckAllUsed(params); err != nil {
		return nil, errors.WithMessagef(err, "failed to create player %q", config)
	}
	return player, nil
}
