package grpc

import (
	"context"
	"time"

	"github.com/peacelens/transcript-scorer/internal/emotion"
	"github.com/peacelens/transcript-scorer/internal/scoring"
)

// Cacher defines the cache operations the handlers need.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// ScoringService is the service surface exposed over gRPC.
type ScoringService interface {
	ScoreTranscript(ctx context.Context, videoID, transcript string, method scoring.Method, runNumber int) (scoring.TranscriptScores, error)
	GetVideoScores(ctx context.Context, videoID string) (scoring.VideoScores, error)
	AnalyzeEmotions(ctx context.Context, transcript string) (emotion.Result, error)
}
