package scoring

import (
	"context"

	"github.com/peacelens/transcript-scorer/internal/emotion"
	"github.com/peacelens/transcript-scorer/internal/llm"
)

// ScoreRepository defines the persistence operations the service
// needs.
type ScoreRepository interface {
	SaveScores(ctx context.Context, videoID, method string, runNumber int, scores map[string]*float64) error
	GetScoresByVideo(ctx context.Context, videoID string) (map[string]map[string]*float64, error)
}

// Aggregator produces a per-transcript emotion summary.
type Aggregator interface {
	Aggregate(ctx context.Context, transcript string) (emotion.Result, error)
}

// Analyzer runs a versioned prompt against an LLM provider.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string, req llm.ScoringRequest, profile emotion.Profile) (map[string]llm.DimensionResult, error)
}
