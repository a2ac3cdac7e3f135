package emotion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubClassifier returns canned scores per call, in order.
type stubClassifier struct {
	calls   int
	perCall []func(sentence string) ([]LabelScore, error)
}

func (s *stubClassifier) Classify(_ context.Context, sentence string) ([]LabelScore, error) {
	fn := s.perCall[s.calls%len(s.perCall)]
	s.calls++
	return fn(sentence)
}

// fullScores builds a complete vocabulary score set with the given
// overrides, everything else at zero.
func fullScores(overrides map[Label]float64) []LabelScore {
	out := make([]LabelScore, 0, len(AllLabels))
	for _, l := range AllLabels {
		out = append(out, LabelScore{Label: l, Score: overrides[l]})
	}
	return out
}

func constant(overrides map[Label]float64) func(string) ([]LabelScore, error) {
	return func(string) ([]LabelScore, error) {
		return fullScores(overrides), nil
	}
}

func failing(err error) func(string) ([]LabelScore, error) {
	return func(string) ([]LabelScore, error) {
		return nil, err
	}
}

func TestNewAggregator(t *testing.T) {
	t.Run("nil classifier panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewAggregator(nil, zap.NewNop())
		})
	})

	t.Run("nil logger gets default", func(t *testing.T) {
		agg := NewAggregator(&stubClassifier{}, nil)
		assert.NotNil(t, agg)
	})
}

func TestAggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty transcript yields neutral zero result", func(t *testing.T) {
		agg := NewAggregator(&stubClassifier{}, zap.NewNop())

		res, err := agg.Aggregate(ctx, "   \n ")

		require.NoError(t, err)
		assert.Equal(t, Neutral, res.DominantEmotion)
		assert.Equal(t, 0.0, res.DominantEmotionScore)
		assert.Equal(t, 0, res.SentencesTotal)
		assert.Len(t, res.AverageScores, len(AllLabels))
		for _, l := range AllLabels {
			assert.Equal(t, 0.0, res.AverageScores[l])
		}
	})

	t.Run("single sentence picks highest non-neutral label", func(t *testing.T) {
		stub := &stubClassifier{perCall: []func(string) ([]LabelScore, error){
			constant(map[Label]float64{"admiration": 0.8, "disgust": 0.3, Neutral: 0.95}),
		}}
		agg := NewAggregator(stub, zap.NewNop())

		res, err := agg.Aggregate(ctx, "What a remarkable effort.")

		require.NoError(t, err)
		assert.Equal(t, Label("admiration"), res.DominantEmotion)
		assert.Equal(t, 0.8, res.DominantEmotionScore)
		assert.Equal(t, 1, res.SentencesTotal)
		assert.Equal(t, 0, res.SentencesSkipped)
	})

	t.Run("averages probabilities across sentences", func(t *testing.T) {
		stub := &stubClassifier{perCall: []func(string) ([]LabelScore, error){
			constant(map[Label]float64{"joy": 0.9, "sadness": 0.1}),
			constant(map[Label]float64{"joy": 0.3, "sadness": 0.5}),
		}}
		agg := NewAggregator(stub, zap.NewNop())

		res, err := agg.Aggregate(ctx, "Great news today. The mood then turned.")

		require.NoError(t, err)
		assert.InDelta(t, 0.6, res.AverageScores["joy"], 1e-9)
		assert.InDelta(t, 0.3, res.AverageScores["sadness"], 1e-9)
		assert.Equal(t, Label("joy"), res.DominantEmotion)
		assert.Equal(t, 2, res.SentencesTotal)
	})

	t.Run("skips failing sentences and averages the rest", func(t *testing.T) {
		stub := &stubClassifier{perCall: []func(string) ([]LabelScore, error){
			constant(map[Label]float64{"joy": 0.8}),
			failing(errors.New("model server down")),
			constant(map[Label]float64{"joy": 0.4}),
		}}
		agg := NewAggregator(stub, zap.NewNop())

		res, err := agg.Aggregate(ctx, "One. Two. Three.")

		require.NoError(t, err)
		assert.Equal(t, 3, res.SentencesTotal)
		assert.Equal(t, 1, res.SentencesSkipped)
		assert.InDelta(t, 0.6, res.AverageScores["joy"], 1e-9)
	})

	t.Run("fails only when every sentence fails", func(t *testing.T) {
		cause := errors.New("model server down")
		stub := &stubClassifier{perCall: []func(string) ([]LabelScore, error){
			failing(cause),
		}}
		agg := NewAggregator(stub, zap.NewNop())

		_, err := agg.Aggregate(ctx, "One. Two. Three.")

		var aggErr *AggregationError
		require.ErrorAs(t, err, &aggErr)
		assert.Equal(t, 3, aggErr.Sentences)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("ties resolve to the earlier vocabulary label", func(t *testing.T) {
		stub := &stubClassifier{perCall: []func(string) ([]LabelScore, error){
			constant(map[Label]float64{"admiration": 0.5, "disgust": 0.5}),
		}}
		agg := NewAggregator(stub, zap.NewNop())

		res, err := agg.Aggregate(ctx, "Mixed feelings.")

		require.NoError(t, err)
		assert.Equal(t, Label("admiration"), res.DominantEmotion)
		assert.Equal(t, Label("admiration"), res.DominantAttitudeEmotion)
	})

	t.Run("neutral never wins while another label was observed", func(t *testing.T) {
		stub := &stubClassifier{perCall: []func(string) ([]LabelScore, error){
			constant(map[Label]float64{Neutral: 0.9, "curiosity": 0.2}),
		}}
		agg := NewAggregator(stub, zap.NewNop())

		res, err := agg.Aggregate(ctx, "Hmm.")

		require.NoError(t, err)
		assert.Equal(t, Label("curiosity"), res.DominantEmotion)
		assert.Equal(t, 0.2, res.DominantEmotionScore)
	})

	t.Run("dominant attitude considers only respect and contempt labels", func(t *testing.T) {
		stub := &stubClassifier{perCall: []func(string) ([]LabelScore, error){
			constant(map[Label]float64{"joy": 0.9, "annoyance": 0.4, "caring": 0.3}),
		}}
		agg := NewAggregator(stub, zap.NewNop())

		res, err := agg.Aggregate(ctx, "A tense celebration.")

		require.NoError(t, err)
		assert.Equal(t, Label("joy"), res.DominantEmotion)
		assert.Equal(t, Label("annoyance"), res.DominantAttitudeEmotion)
		assert.Equal(t, 0.4, res.DominantAttitudeScore)
	})

	t.Run("canceled context aborts", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		stub := &stubClassifier{perCall: []func(string) ([]LabelScore, error){
			constant(nil),
		}}
		agg := NewAggregator(stub, zap.NewNop())

		_, err := agg.Aggregate(canceled, "Anything.")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
