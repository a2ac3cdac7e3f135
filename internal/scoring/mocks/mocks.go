package mocks

import (
	"context"
	"errors"

	"github.com/peacelens/transcript-scorer/internal/emotion"
	"github.com/peacelens/transcript-scorer/internal/llm"
)

// MockScoreRepository is a func-field mock of the ScoreRepository
// interface for service-layer tests.
type MockScoreRepository struct {
	SaveScoresFunc       func(ctx context.Context, videoID, method string, runNumber int, scores map[string]*float64) error
	GetScoresByVideoFunc func(ctx context.Context, videoID string) (map[string]map[string]*float64, error)
}

func (m *MockScoreRepository) SaveScores(ctx context.Context, videoID, method string, runNumber int, scores map[string]*float64) error {
	if m.SaveScoresFunc != nil {
		return m.SaveScoresFunc(ctx, videoID, method, runNumber, scores)
	}
	return nil
}

func (m *MockScoreRepository) GetScoresByVideo(ctx context.Context, videoID string) (map[string]map[string]*float64, error) {
	if m.GetScoresByVideoFunc != nil {
		return m.GetScoresByVideoFunc(ctx, videoID)
	}
	return nil, errors.New("GetScoresByVideoFunc not implemented")
}

// MockAggregator is a func-field mock of the Aggregator interface.
type MockAggregator struct {
	AggregateFunc func(ctx context.Context, transcript string) (emotion.Result, error)
}

func (m *MockAggregator) Aggregate(ctx context.Context, transcript string) (emotion.Result, error) {
	if m.AggregateFunc != nil {
		return m.AggregateFunc(ctx, transcript)
	}
	return emotion.Result{}, errors.New("AggregateFunc not implemented")
}

// MockAnalyzer is a func-field mock of the Analyzer interface.
type MockAnalyzer struct {
	AnalyzeFunc func(ctx context.Context, transcript string, req llm.ScoringRequest, profile emotion.Profile) (map[string]llm.DimensionResult, error)
}

func (m *MockAnalyzer) Analyze(ctx context.Context, transcript string, req llm.ScoringRequest, profile emotion.Profile) (map[string]llm.DimensionResult, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, transcript, req, profile)
	}
	return nil, errors.New("AnalyzeFunc not implemented")
}
