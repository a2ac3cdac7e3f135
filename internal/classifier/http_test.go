package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/peacelens/transcript-scorer/internal/emotion"
)

func classifyServer(t *testing.T, emotions []labelScore, onRequest func(req classifyRequest)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/classify", r.URL.Path)

		var req classifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if onRequest != nil {
			onRequest(req)
		}

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(classifyResponse{Emotions: emotions}))
	}))
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("maps server labels onto the full vocabulary", func(t *testing.T) {
		srv := classifyServer(t, []labelScore{
			{Label: "joy", Score: 0.81},
			{Label: "neutral", Score: 0.12},
		}, func(req classifyRequest) {
			assert.Equal(t, "A happy sentence.", req.Text)
			assert.Equal(t, "roberta_go_emotions", req.Model)
		})
		defer srv.Close()

		adapter := NewHTTPAdapter(srv.URL, "roberta_go_emotions", zap.NewNop())

		scores, err := adapter.Classify(ctx, "A happy sentence.")

		require.NoError(t, err)
		require.Len(t, scores, len(emotion.AllLabels))

		byLabel := make(map[emotion.Label]float64, len(scores))
		for _, s := range scores {
			byLabel[s.Label] = s.Score
		}
		assert.Equal(t, 0.81, byLabel["joy"])
		assert.Equal(t, 0.12, byLabel["neutral"])
		assert.Equal(t, 0.0, byLabel["anger"])
	})

	t.Run("drops labels outside the vocabulary", func(t *testing.T) {
		srv := classifyServer(t, []labelScore{
			{Label: "schadenfreude", Score: 0.99},
			{Label: "joy", Score: 0.5},
		}, nil)
		defer srv.Close()

		adapter := NewHTTPAdapter(srv.URL, "m", zap.NewNop())

		scores, err := adapter.Classify(ctx, "text")

		require.NoError(t, err)
		assert.Len(t, scores, len(emotion.AllLabels))
		for _, s := range scores {
			assert.True(t, emotion.Known(s.Label))
		}
	})

	t.Run("truncates long sentences before sending", func(t *testing.T) {
		var gotLen int
		srv := classifyServer(t, nil, func(req classifyRequest) {
			gotLen = len([]rune(req.Text))
		})
		defer srv.Close()

		adapter := NewHTTPAdapter(srv.URL, "m", zap.NewNop())

		_, err := adapter.Classify(ctx, strings.Repeat("a", 2000))

		require.NoError(t, err)
		assert.Equal(t, maxSentenceRunes, gotLen)
	})

	t.Run("truncation counts runes not bytes", func(t *testing.T) {
		var got string
		srv := classifyServer(t, nil, func(req classifyRequest) {
			got = req.Text
		})
		defer srv.Close()

		adapter := NewHTTPAdapter(srv.URL, "m", zap.NewNop())

		_, err := adapter.Classify(ctx, strings.Repeat("é", 600))

		require.NoError(t, err)
		assert.Equal(t, maxSentenceRunes, len([]rune(got)))
	})

	t.Run("server error is returned", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "model loading", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		adapter := NewHTTPAdapter(srv.URL, "m", zap.NewNop())

		_, err := adapter.Classify(ctx, "text")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "model loading")
	})

	t.Run("unreachable server", func(t *testing.T) {
		adapter := NewHTTPAdapter("http://127.0.0.1:1", "m", zap.NewNop())

		_, err := adapter.Classify(ctx, "text")

		assert.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		srv := classifyServer(t, nil, nil)
		defer srv.Close()

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		adapter := NewHTTPAdapter(srv.URL, "m", zap.NewNop())

		_, err := adapter.Classify(canceled, "text")

		assert.Error(t, err)
	})
}
