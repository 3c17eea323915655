// Package linear implements a linear evaluator (one weight per feature + bias) on the feature
// set of the features package.
package linear

import (
	"fmt"
	"github.com/neverfolds/connect383/internal/ai"
	"github.com/neverfolds/connect383/internal/features"
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/neverfolds/connect383/internal/state"
	"github.com/pkg/errors"
	"slices"
	"strconv"
	"strings"
)

// Evaluator is a linear model on the board features. It implements ai.Evaluator.
//
// It is immutable, and hence safe for concurrent use.
type Evaluator struct {
	name string

	// weights for each feature, followed by the bias.
	weights []float32
}

// Assert Evaluator is an ai.Evaluator.
var _ ai.Evaluator = (*Evaluator)(nil)

// NewWithWeights creates a new Evaluator with the given weights: one per feature (see
// features.BoardSpecs) followed by the bias.
// Ownership of the weights is transferred.
func NewWithWeights(weights ...float32) *Evaluator {
	return &Evaluator{name: "linear", weights: weights}
}

// WithName returns a copy of the evaluator with a new name.
func (e *Evaluator) WithName(name string) *Evaluator {
	return &Evaluator{name: name, weights: slices.Clone(e.weights)}
}

// String implements ai.Evaluator.
func (e *Evaluator) String() string {
	return e.name
}

// Weights returns a copy of the weights, bias last.
func (e *Evaluator) Weights() []float32 {
	return slices.Clone(e.weights)
}

// Estimate implements ai.Evaluator. It only accepts *state.Board.
func (e *Evaluator) Estimate(s searchers.GameState) (searchers.Value, error) {
	board, ok := s.(*state.Board)
	if !ok {
		return 0, errors.Errorf("linear evaluator %q can't estimate state of type %T", e.name, s)
	}
	return e.EstimateFeatures(features.ForBoard(board))
}

// EstimateFeatures is like Estimate, but takes the raw features as input.
func (e *Evaluator) EstimateFeatures(f []float32) (searchers.Value, error) {
	if len(e.weights) != len(f)+1 {
		return 0, errors.Errorf("linear evaluator %q has %d weights (+1 bias), but there are %d features",
			e.name, len(e.weights)-1, len(f))
	}
	// Sum start with bias.
	sum := e.weights[len(e.weights)-1]
	for ii, feature := range f {
		sum += feature * e.weights[ii]
	}
	return sum, nil
}

// AsGoCode outputs the weights as Go code, one feature per line.
func (e *Evaluator) AsGoCode() string {
	if len(e.weights) != features.BoardFeaturesDim+1 {
		return fmt.Sprintf("model with %d weights+1 bias, BoardFeaturesDim=%d", len(e.weights)-1, features.BoardFeaturesDim)
	}
	var parts []string
	for _, spec := range features.BoardSpecs {
		parts = append(parts, fmt.Sprintf("\t// %s\n\t%.4f,\n", spec.Name, e.weights[spec.Id]))
	}
	parts = append(parts, fmt.Sprintf("\t// Bias\n\t%.4f,\n", e.weights[len(e.weights)-1]))
	return strings.Join(parts, "")
}

// ParseWeights parses weights separated by ";" (commas are used to separate parameters), one per
// feature followed by the bias.
func ParseWeights(name, weightsStr string) (*Evaluator, error) {
	parts := strings.Split(weightsStr, ";")
	if len(parts) != features.BoardFeaturesDim+1 {
		return nil, errors.Errorf("weights %q must have %d values (%d features + bias), got %d",
			weightsStr, features.BoardFeaturesDim+1, features.BoardFeaturesDim, len(parts))
	}
	weights := make([]float32, len(parts))
	for ii, part := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse weight #%d in %q", ii, weightsStr)
		}
		weights[ii] = float32(w)
	}
	return NewWithWeights(weights...).WithName(name), nil
}
