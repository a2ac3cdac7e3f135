package grpc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/peacelens/transcript-scorer/api/v1"
	"github.com/peacelens/transcript-scorer/internal/emotion"
	"github.com/peacelens/transcript-scorer/internal/llm"
	"github.com/peacelens/transcript-scorer/internal/scoring"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 5 * time.Minute

	// API-triggered scoring always writes to run 1; numbered reruns
	// are a batch-CLI concern.
	apiRunNumber = 1
)

const cacheKeyVideoScores = "grpc:video_scores"

type Handlers struct {
	pb.UnimplementedTranscriptScoringServer
	scoring  ScoringService
	cache    Cacher
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewHandlers initializes the gRPC handlers.
func NewHandlers(scoringService ScoringService, cache Cacher, logger *zap.Logger, ttl time.Duration) *Handlers {
	if scoringService == nil {
		panic("nil ScoringService provided to NewHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &Handlers{
		scoring:  scoringService,
		cache:    cache,
		logger:   logger.Named("grpc-handler"),
		cacheTTL: ttl,
	}
}

func (h *Handlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		h.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		h.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	var aggErr *emotion.AggregationError
	var schemaErr *llm.SchemaError
	switch {
	case errors.Is(err, scoring.ErrEmptyTranscript):
		return status.Error(codes.InvalidArgument, "transcript must not be empty")
	case errors.Is(err, scoring.ErrNoScores):
		h.logger.Info("no scores found", zap.String("op", op))
		return status.Error(codes.NotFound, "no scores stored for the given video")
	case errors.Is(err, scoring.ErrStorageFailure):
		h.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	case errors.As(err, &aggErr):
		h.logger.Error("classification failed for whole transcript", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Unavailable, "emotion classifier unavailable")
	case errors.As(err, &schemaErr):
		h.logger.Error("llm response failed schema validation", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "llm returned an invalid response")
	default:
		h.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (h *Handlers) AnalyzeTranscript(ctx context.Context, req *pb.AnalyzeTranscriptRequest) (*pb.AnalyzeTranscriptResponse, error) {
	if strings.TrimSpace(req.GetVideoId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "video_id is required")
	}
	method, err := scoring.ParseMethod(req.GetMethod(), req.GetPromptVersion(), req.GetProvider())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	result, err := h.scoring.ScoreTranscript(ctx, req.GetVideoId(), req.GetTranscript(), method, apiRunNumber)
	if err != nil {
		return nil, h.handleError(ctx, "AnalyzeTranscript", err)
	}

	return &pb.AnalyzeTranscriptResponse{
		Method:   result.Method,
		Scores:   toProtoScores(result.Scores),
		Emotions: toProtoEmotions(result.Emotions),
	}, nil
}

func (h *Handlers) GetVideoScores(ctx context.Context, req *pb.GetVideoScoresRequest) (*pb.GetVideoScoresResponse, error) {
	videoID := strings.TrimSpace(req.GetVideoId())
	if videoID == "" {
		return nil, status.Error(codes.InvalidArgument, "video_id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := fmt.Sprintf("%s:%s", cacheKeyVideoScores, videoID)

	scores, err := FindAndCache(ctx, h.cache, &h.sfGroup, cacheKey, h.cacheTTL, h.logger, func(fetchCtx context.Context) (scoring.VideoScores, error) {
		return h.scoring.GetVideoScores(fetchCtx, videoID)
	})
	if err != nil {
		return nil, h.handleError(ctx, "GetVideoScores", err)
	}

	methodNames := make([]string, 0, len(scores.Methods))
	for name := range scores.Methods {
		methodNames = append(methodNames, name)
	}
	sort.Strings(methodNames)

	methods := make([]*pb.MethodScores, 0, len(methodNames))
	for _, name := range methodNames {
		methods = append(methods, &pb.MethodScores{
			Method: name,
			Scores: toProtoScores(scores.Methods[name]),
		})
	}

	return &pb.GetVideoScoresResponse{VideoId: scores.VideoID, Methods: methods}, nil
}

func (h *Handlers) GetEmotionProfile(ctx context.Context, req *pb.EmotionProfileRequest) (*pb.EmotionProfileResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	result, err := h.scoring.AnalyzeEmotions(ctx, req.GetTranscript())
	if err != nil {
		return nil, h.handleError(ctx, "GetEmotionProfile", err)
	}

	return &pb.EmotionProfileResponse{
		Emotions:         toProtoEmotions(&result),
		SentencesTotal:   int64(result.SentencesTotal),
		SentencesSkipped: int64(result.SentencesSkipped),
	}, nil
}

func toProtoScores(scores map[string]*float64) []*pb.DimensionScore {
	dims := make([]string, 0, len(scores))
	for d := range scores {
		dims = append(dims, d)
	}
	sort.Strings(dims)

	out := make([]*pb.DimensionScore, 0, len(dims))
	for _, d := range dims {
		ds := &pb.DimensionScore{Dimension: d}
		if v := scores[d]; v != nil {
			ds.Score = *v
			ds.Available = true
		}
		out = append(out, ds)
	}
	return out
}

func toProtoEmotions(res *emotion.Result) *pb.EmotionSummary {
	if res == nil {
		return nil
	}
	avg := make(map[string]float64, len(res.AverageScores))
	for l, v := range res.AverageScores {
		avg[string(l)] = v
	}
	return &pb.EmotionSummary{
		DominantEmotion:         string(res.DominantEmotion),
		DominantEmotionScore:    res.DominantEmotionScore,
		DominantAttitudeEmotion: string(res.DominantAttitudeEmotion),
		DominantAttitudeScore:   res.DominantAttitudeScore,
		AverageScores:           avg,
	}
}
