package scoring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/peacelens/transcript-scorer/internal/emotion"
	"github.com/peacelens/transcript-scorer/internal/llm"
	"github.com/peacelens/transcript-scorer/internal/scale"
	"github.com/peacelens/transcript-scorer/internal/valence"
)

var (
	ErrEmptyTranscript = errors.New("transcript is empty")
	ErrNoScores        = errors.New("no scores found")
	ErrStorageFailure  = errors.New("storage failure")
)

// Service ties the emotion core, the valence scorer, and the LLM
// collaborators together and persists the normalized results.
type Service struct {
	aggregator Aggregator
	analyzer   Analyzer
	valence    *valence.Scorer
	storage    ScoreRepository
	logger     *zap.Logger
}

func NewService(aggregator Aggregator, analyzer Analyzer, valenceScorer *valence.Scorer, storage ScoreRepository, logger *zap.Logger) *Service {
	if aggregator == nil {
		panic("aggregator must not be nil")
	}
	if valenceScorer == nil {
		panic("valence scorer must not be nil")
	}
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		aggregator: aggregator,
		analyzer:   analyzer,
		valence:    valenceScorer,
		storage:    storage,
		logger:     logger.Named("scoring"),
	}
}

// AnalyzeEmotions runs only the emotion aggregation over a transcript.
func (s *Service) AnalyzeEmotions(ctx context.Context, transcript string) (emotion.Result, error) {
	if strings.TrimSpace(transcript) == "" {
		return emotion.Result{}, ErrEmptyTranscript
	}
	return s.aggregator.Aggregate(ctx, transcript)
}

// ScoreTranscript runs one scoring method over a transcript, persists
// the normalized per-dimension scores under runNumber, and returns
// them. Dimensions whose raw score falls outside every known range
// are stored and returned as unavailable (nil), never clamped.
func (s *Service) ScoreTranscript(ctx context.Context, videoID, transcript string, method Method, runNumber int) (TranscriptScores, error) {
	if strings.TrimSpace(transcript) == "" {
		return TranscriptScores{}, ErrEmptyTranscript
	}

	out := TranscriptScores{
		VideoID: videoID,
		Method:  method.Name(),
		Scores:  make(map[string]*float64),
	}

	switch method.Kind {
	case KindRobertaPlain:
		res, err := s.aggregator.Aggregate(ctx, transcript)
		if err != nil {
			return TranscriptScores{}, fmt.Errorf("aggregate transcript: %w", err)
		}
		score := scale.RespectContemptTo1To5(res.AverageScores)
		out.Scores[DimCompassionContempt] = &score
		out.Emotions = &res

	case KindRobertaValence:
		res, err := s.aggregator.Aggregate(ctx, transcript)
		if err != nil {
			return TranscriptScores{}, fmt.Errorf("aggregate transcript: %w", err)
		}
		v := s.valence.Score(res.AverageScores)
		score := scale.ValenceTo1To5(v.Scaled)
		out.Scores[DimCompassionContempt] = &score
		out.Emotions = &res

	case KindLLM:
		if s.analyzer == nil {
			return TranscriptScores{}, errors.New("llm analyzer not configured")
		}
		req := llm.ScoringRequest{PromptVersion: method.PromptVersion, Provider: method.Provider}

		var profile emotion.Profile
		if method.PromptVersion.RequiresContext() {
			res, err := s.aggregator.Aggregate(ctx, transcript)
			if err != nil {
				return TranscriptScores{}, fmt.Errorf("aggregate transcript for context: %w", err)
			}
			profile = res.AverageScores
			out.Emotions = &res
		}

		result, err := s.analyzer.Analyze(ctx, transcript, req, profile)
		if err != nil {
			return TranscriptScores{}, fmt.Errorf("llm analysis: %w", err)
		}

		for _, dim := range llm.Dimensions(method.PromptVersion) {
			norm, err := scale.To1To5(result[dim].Score)
			if err != nil {
				s.logger.Warn("score normalization failed, marking unavailable",
					zap.String("video_id", videoID),
					zap.String("method", out.Method),
					zap.String("dimension", dim),
					zap.Float64("raw", result[dim].Score))
				out.Scores[dim] = nil
				continue
			}
			score := norm
			out.Scores[dim] = &score
		}

	default:
		return TranscriptScores{}, fmt.Errorf("unknown scoring method %q", method.Kind)
	}

	if err := s.storage.SaveScores(ctx, videoID, out.Method, runNumber, out.Scores); err != nil {
		return TranscriptScores{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("transcript scored",
		zap.String("video_id", videoID),
		zap.String("method", out.Method),
		zap.Int("dimensions", len(out.Scores)))

	return out, nil
}

// GetVideoScores returns every persisted score for a video, pivoted by
// method and dimension.
func (s *Service) GetVideoScores(ctx context.Context, videoID string) (VideoScores, error) {
	methods, err := s.storage.GetScoresByVideo(ctx, videoID)
	if err != nil {
		return VideoScores{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if len(methods) == 0 {
		return VideoScores{}, ErrNoScores
	}
	return VideoScores{VideoID: videoID, Methods: methods}, nil
}
