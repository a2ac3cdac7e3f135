package valence

import (
	"sync"

	"go.uber.org/zap"

	"github.com/peacelens/transcript-scorer/internal/emotion"
)

// Score is the weighted valence of one emotion profile.
type Score struct {
	// Raw is the signed aggregate on the -100..+100 scale.
	Raw float64 `json:"valence_score_100"`
	// Scaled maps Raw onto 1-5: -100 -> 1, 0 -> 3, +100 -> 5.
	Scaled float64 `json:"human_rater_score_1_to_5"`
}

// Scorer applies a valence rubric to emotion profiles. The rubric is
// validated at construction and read-only afterwards, so one Scorer is
// shared for the whole process.
type Scorer struct {
	rubric Rubric
	logger *zap.Logger

	warnOnce sync.Map // label -> struct{}, missing-weight warnings emitted once
}

func NewScorer(rubric Rubric, logger *zap.Logger) (*Scorer, error) {
	if rubric == nil {
		rubric = DefaultRubric
	}
	if err := rubric.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{
		rubric: rubric,
		logger: logger.Named("valence"),
	}, nil
}

// Score computes Raw = sum over labels of probability*100*weight,
// clamped to [-100,100], and the linear 1-5 mapping 3 + raw/50.
func (s *Scorer) Score(profile emotion.Profile) Score {
	var raw float64
	for _, l := range emotion.AllLabels {
		w, ok := s.rubric[l]
		if !ok {
			// Unreachable after Validate, but a drifting vocabulary
			// must surface in logs rather than skew scores silently.
			if _, seen := s.warnOnce.LoadOrStore(l, struct{}{}); !seen {
				s.logger.Warn("label has no valence weight, contributing 0",
					zap.String("label", string(l)))
			}
			continue
		}
		raw += profile[l] * 100 * w
	}

	clamped := raw
	if clamped > 100 {
		clamped = 100
	} else if clamped < -100 {
		clamped = -100
	}

	return Score{
		Raw:    clamped,
		Scaled: 3.0 + clamped/50.0,
	}
}
