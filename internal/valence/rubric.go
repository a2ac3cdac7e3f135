// Package valence converts an averaged emotion profile into a single
// signed score by weighting each label with a fixed rubric, then maps
// that score onto the 1-5 human-rater scale.
package valence

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/peacelens/transcript-scorer/internal/emotion"
)

// Rubric assigns every vocabulary label a weight in one of five bands:
// -1.0, -0.5, 0.0, +0.5, +1.0.
type Rubric map[emotion.Label]float64

// DefaultRubric is the agreed valence contract for the GoEmotions
// vocabulary.
var DefaultRubric = Rubric{
	// Highly positive.
	"joy":        1.0,
	"love":       1.0,
	"admiration": 1.0,
	"gratitude":  1.0,
	"pride":      1.0,
	"excitement": 1.0,

	// Mildly positive.
	"approval":  0.5,
	"caring":    0.5,
	"optimism":  0.5,
	"relief":    0.5,
	"amusement": 0.5,
	"curiosity": 0.5,

	// Neutral.
	"neutral":     0.0,
	"realization": 0.0,
	"surprise":    0.0,
	"confusion":   0.0,

	// Mildly negative.
	"annoyance":      -0.5,
	"disapproval":    -0.5,
	"disappointment": -0.5,
	"nervousness":    -0.5,
	"remorse":        -0.5,
	"desire":         -0.5,

	// Highly negative.
	"anger":         -1.0,
	"disgust":       -1.0,
	"fear":          -1.0,
	"sadness":       -1.0,
	"grief":         -1.0,
	"embarrassment": -1.0,
}

var validWeights = map[float64]struct{}{
	-1.0: {}, -0.5: {}, 0.0: {}, 0.5: {}, 1.0: {},
}

// Validate checks that the rubric covers the whole vocabulary with
// weights from the five allowed bands. A gap here is a configuration
// error and must halt the process before any scoring happens.
func (r Rubric) Validate() error {
	for _, l := range emotion.AllLabels {
		w, ok := r[l]
		if !ok {
			return fmt.Errorf("valence rubric is missing label %q", l)
		}
		if _, ok := validWeights[w]; !ok {
			return fmt.Errorf("valence rubric weight %v for label %q is not one of -1, -0.5, 0, 0.5, 1", w, l)
		}
	}
	for l := range r {
		if !emotion.Known(l) {
			return fmt.Errorf("valence rubric label %q is not in the vocabulary", l)
		}
	}
	return nil
}

// LoadRubric reads a rubric override from a YAML file mapping label to
// weight. The loaded rubric is validated exhaustively; partial
// overrides are rejected so a stale file can never silently zero out
// labels.
func LoadRubric(path string) (Rubric, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rubric file: %w", err)
	}
	defer f.Close()

	var raw map[string]float64
	if err := yaml.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode rubric file: %w", err)
	}

	r := make(Rubric, len(raw))
	for k, v := range raw {
		r[emotion.Label(k)] = v
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
