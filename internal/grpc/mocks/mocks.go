package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/peacelens/transcript-scorer/internal/emotion"
	"github.com/peacelens/transcript-scorer/internal/scoring"
)

// MockCacher is a func-field mock of the Cacher interface. The zero
// value behaves like an always-missing cache.
type MockCacher struct {
	GetFunc   func(ctx context.Context, key string, dest any) error
	SetFunc   func(ctx context.Context, key string, value any, expiration time.Duration) error
	CloseFunc func() error
}

func (m *MockCacher) Get(ctx context.Context, key string, dest any) error {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key, dest)
	}
	return redis.Nil
}

func (m *MockCacher) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, expiration)
	}
	return nil
}

func (m *MockCacher) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// MockScoringService is a func-field mock of the ScoringService
// interface for handler tests.
type MockScoringService struct {
	ScoreTranscriptFunc func(ctx context.Context, videoID, transcript string, method scoring.Method, runNumber int) (scoring.TranscriptScores, error)
	GetVideoScoresFunc  func(ctx context.Context, videoID string) (scoring.VideoScores, error)
	AnalyzeEmotionsFunc func(ctx context.Context, transcript string) (emotion.Result, error)
}

func (m *MockScoringService) ScoreTranscript(ctx context.Context, videoID, transcript string, method scoring.Method, runNumber int) (scoring.TranscriptScores, error) {
	if m.ScoreTranscriptFunc != nil {
		return m.ScoreTranscriptFunc(ctx, videoID, transcript, method, runNumber)
	}
	return scoring.TranscriptScores{}, errors.New("ScoreTranscriptFunc not implemented")
}

func (m *MockScoringService) GetVideoScores(ctx context.Context, videoID string) (scoring.VideoScores, error) {
	if m.GetVideoScoresFunc != nil {
		return m.GetVideoScoresFunc(ctx, videoID)
	}
	return scoring.VideoScores{}, errors.New("GetVideoScoresFunc not implemented")
}

func (m *MockScoringService) AnalyzeEmotions(ctx context.Context, transcript string) (emotion.Result, error) {
	if m.AnalyzeEmotionsFunc != nil {
		return m.AnalyzeEmotionsFunc(ctx, transcript)
	}
	return emotion.Result{}, errors.New("AnalyzeEmotionsFunc not implemented")
}
