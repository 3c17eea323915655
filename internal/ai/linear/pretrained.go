package linear

import (
	"github.com/neverfolds/connect383/internal/parameters"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Hand-tuned weight presets.

var (
	// Default weights: runs score at face value, plus a bonus for windows that can still be
	// completed, and a small center preference.
	Default = NewWithWeights(
		// RunsScore
		1.0,
		// OpenOne
		0.5,
		// OpenTwo
		2.0,
		// Center
		0.25,
		// Bias
		0,
	).WithName("default")

	// Alt weights favor center control over open windows. Used by the "alt" players, to compare
	// against Default.
	Alt = NewWithWeights(
		// RunsScore
		1.0,
		// OpenOne
		0.1,
		// OpenTwo
		1.0,
		// Center
		1.5,
		// Bias
		0,
	).WithName("alt")

	// Presets by name.
	Presets = map[string]*Evaluator{
		Default.name: Default,
		Alt.name:     Alt,
	}
)

// NewFromParams returns the evaluator configured by the "evaluator" parameter (a preset name) or
// the "weights" parameter (see ParseWeights). Both parameters are removed from params.
//
// If neither is set, defaultPreset is used.
func NewFromParams(params parameters.Params, defaultPreset string) (*Evaluator, error) {
	weightsStr, err := parameters.PopParamOr(params, "weights", "")
	if err != nil {
		return nil, err
	}
	presetName, err := parameters.PopParamOr(params, "evaluator", defaultPreset)
	if err != nil {
		return nil, err
	}
	if weightsStr != "" {
		e, err := ParseWeights("custom", weightsStr)
		if err != nil {
			return nil, err
		}
		klog.V(1).Infof("Linear evaluator with custom weights %v", e.weights)
		return e, nil
	}
	e, found := Presets[presetName]
	if !found {
		return nil, errors.Errorf("unknown evaluator %q, valid values are \"default\" and \"alt\"", presetName)
	}
	return e, nil
}
