// Package classifier adapts the external emotion model server to the
// Classifier contract consumed by the aggregation core.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/peacelens/transcript-scorer/internal/emotion"
)

// maxSentenceRunes clips classifier input to the model's context
// window. Truncation is this adapter's responsibility; the core never
// sees it.
const maxSentenceRunes = 500

const defaultTimeout = 60 * time.Second

type classifyRequest struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type classifyResponse struct {
	Emotions []labelScore `json:"emotions"`
}

// HTTPAdapter calls a model server exposing POST /classify and maps
// its labels onto the fixed vocabulary. It is safe for concurrent use
// and is constructed once per process.
type HTTPAdapter struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger

	warnOnce sync.Map // label string -> struct{}
}

func NewHTTPAdapter(baseURL, model string, logger *zap.Logger) *HTTPAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPAdapter{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: defaultTimeout},
		logger:  logger.Named("classifier"),
	}
}

// Classify returns a probability for every vocabulary label. Labels
// the server never emitted default to 0 and labels outside the
// vocabulary are dropped; both conditions are logged once per process.
func (a *HTTPAdapter) Classify(ctx context.Context, sentence string) ([]emotion.LabelScore, error) {
	if runes := []rune(sentence); len(runes) > maxSentenceRunes {
		sentence = string(runes[:maxSentenceRunes])
	}

	payload, err := json.Marshal(classifyRequest{Text: sentence, Model: a.model})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/classify", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classify request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("classify %s: %s", resp.Status, string(body))
	}

	var out classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("classify decode: %w", err)
	}

	byLabel := make(map[emotion.Label]float64, len(out.Emotions))
	for _, e := range out.Emotions {
		l := emotion.Label(e.Label)
		if !emotion.Known(l) {
			a.warnOnceFor("unknown:"+e.Label, "model emitted label outside the vocabulary, ignoring", e.Label)
			continue
		}
		byLabel[l] = e.Score
	}

	scores := make([]emotion.LabelScore, 0, len(emotion.AllLabels))
	for _, l := range emotion.AllLabels {
		s, ok := byLabel[l]
		if !ok {
			a.warnOnceFor("missing:"+string(l), "model never emitted vocabulary label, defaulting to 0", string(l))
		}
		scores = append(scores, emotion.LabelScore{Label: l, Score: s})
	}
	return scores, nil
}

func (a *HTTPAdapter) warnOnceFor(key, msg, label string) {
	if _, seen := a.warnOnce.LoadOrStore(key, struct{}{}); !seen {
		a.logger.Warn(msg, zap.String("label", label))
	}
}
