package emotion

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Result is the immutable per-transcript emotion summary.
type Result struct {
	AverageScores           Profile `json:"average_scores"`
	DominantEmotion         Label   `json:"dominant_emotion"`
	DominantEmotionScore    float64 `json:"dominant_emotion_score"`
	DominantAttitudeEmotion Label   `json:"dominant_attitude_emotion"`
	DominantAttitudeScore   float64 `json:"dominant_attitude_score"`
	SentencesTotal          int     `json:"sentences_total"`
	SentencesSkipped        int     `json:"sentences_skipped"`
}

// AggregationError is returned when every sentence of a transcript
// failed classification, so no averages could be produced.
type AggregationError struct {
	Sentences int
	LastErr   error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("classification failed for all %d sentences: %v", e.Sentences, e.LastErr)
}

func (e *AggregationError) Unwrap() error { return e.LastErr }

// Aggregator runs a classifier over every sentence of a transcript and
// averages the per-label probabilities.
type Aggregator struct {
	classifier Classifier
	logger     *zap.Logger
}

func NewAggregator(classifier Classifier, logger *zap.Logger) *Aggregator {
	if classifier == nil {
		panic("classifier must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		classifier: classifier,
		logger:     logger.Named("aggregator"),
	}
}

// Aggregate classifies each sentence of transcript and returns the
// averaged profile plus the dominant emotion and attitude picks.
//
// A sentence whose classification fails is skipped and counted in
// SentencesSkipped; the transcript as a whole fails only when every
// sentence does, in which case an *AggregationError is returned. An
// empty transcript yields an all-zero profile with DominantEmotion set
// to the neutral fallback.
func (a *Aggregator) Aggregate(ctx context.Context, transcript string) (Result, error) {
	sentences := SplitSentences(transcript)

	sums := make(map[Label]float64, len(AllLabels))
	counts := make(map[Label]int, len(AllLabels))

	var skipped int
	var lastErr error
	for i, sentence := range sentences {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		scores, err := a.classifier.Classify(ctx, sentence)
		if err != nil {
			skipped++
			lastErr = err
			a.logger.Warn("sentence classification failed, skipping",
				zap.Int("sentence_index", i),
				zap.Error(err))
			continue
		}
		for _, ls := range scores {
			if !Known(ls.Label) {
				continue
			}
			sums[ls.Label] += ls.Score
			counts[ls.Label]++
		}
	}

	if len(sentences) > 0 && skipped == len(sentences) {
		return Result{}, &AggregationError{Sentences: len(sentences), LastErr: lastErr}
	}

	avg := NewProfile()
	for l, n := range counts {
		if n > 0 {
			avg[l] = sums[l] / float64(n)
		}
	}

	res := Result{
		AverageScores:    avg,
		DominantEmotion:  Neutral,
		SentencesTotal:   len(sentences),
		SentencesSkipped: skipped,
	}

	if len(sentences) == 0 || len(counts) == 0 {
		return res, nil
	}

	// Argmax in canonical vocabulary order so ties are reproducible
	// across runs; map iteration order must never decide a winner.
	bestSet := false
	for _, l := range AllLabels {
		if _, excluded := NonDominant[l]; excluded {
			continue
		}
		if counts[l] == 0 {
			continue
		}
		if !bestSet || avg[l] > res.DominantEmotionScore {
			res.DominantEmotion = l
			res.DominantEmotionScore = avg[l]
			bestSet = true
		}
	}

	if !bestSet {
		// Only excluded labels were observed; report the neutral
		// fallback with its own averaged score.
		res.DominantEmotionScore = avg[Neutral]
	}

	attSet := false
	for _, l := range AllLabels {
		if !IsAttitude(l) || counts[l] == 0 {
			continue
		}
		if !attSet || avg[l] > res.DominantAttitudeScore {
			res.DominantAttitudeEmotion = l
			res.DominantAttitudeScore = avg[l]
			attSet = true
		}
	}

	if skipped > 0 {
		a.logger.Info("transcript aggregated with skipped sentences",
			zap.Int("sentences_total", len(sentences)),
			zap.Int("sentences_skipped", skipped))
	}

	return res, nil
}
