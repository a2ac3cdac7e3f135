package emotion

import "context"

// LabelScore is one entry of a classifier's multi-label output.
type LabelScore struct {
	Label Label
	Score float64
}

// Classifier is the black-box sentence classifier contract. For a
// single sentence it returns an independent probability per vocabulary
// label. Implementations own input truncation and label mapping; they
// must be safe for concurrent use because one instance is shared for
// the whole process.
type Classifier interface {
	Classify(ctx context.Context, sentence string) ([]LabelScore, error)
}
