package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/peacelens/transcript-scorer/internal/emotion"
)

// ErrMissingAPIKey is returned when a provider is requested without a
// configured credential.
var ErrMissingAPIKey = errors.New("api key not configured")

const defaultRequestTimeout = 120 * time.Second

// Config holds the provider endpoints and credentials for the client.
type Config struct {
	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string

	GeminiBaseURL string
	GeminiAPIKey  string
	GeminiModel   string
}

// Client calls LLM providers over HTTP and parses their JSON score
// responses. One client is shared per process.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.OpenAIBaseURL == "" {
		cfg.OpenAIBaseURL = "https://api.openai.com/v1"
	}
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4o"
	}
	if cfg.GeminiBaseURL == "" {
		cfg.GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-1.5-flash"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: defaultRequestTimeout},
		logger: logger.Named("llm"),
	}
}

// Analyze routes one transcript through the prompt and provider named
// by req and returns the validated per-dimension results. Prompts that
// require context embed the emotion profile in the user message;
// callers of such prompts must supply a non-nil profile.
func (c *Client) Analyze(ctx context.Context, transcript string, req ScoringRequest, profile emotion.Profile) (map[string]DimensionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.PromptVersion.RequiresContext() && profile == nil {
		return nil, fmt.Errorf("prompt %s requires an emotion profile", req.PromptVersion)
	}

	userPrompt, err := buildUserPrompt(transcript, req.PromptVersion, profile)
	if err != nil {
		return nil, err
	}

	c.logger.Info("routing analysis request",
		zap.String("provider", string(req.Provider)),
		zap.String("prompt_version", string(req.PromptVersion)))

	var raw string
	switch req.Provider {
	case ProviderOpenAI:
		raw, err = c.completeOpenAI(ctx, systemPrompts[req.PromptVersion], userPrompt)
	case ProviderGemini:
		raw, err = c.completeGemini(ctx, systemPrompts[req.PromptVersion], userPrompt)
	}
	if err != nil {
		return nil, err
	}

	var result map[string]DimensionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("provider %s returned invalid JSON: %w", req.Provider, err)
	}
	if err := validateResponse(req.PromptVersion, result); err != nil {
		return nil, err
	}
	return result, nil
}

func buildUserPrompt(transcript string, version PromptVersion, profile emotion.Profile) (string, error) {
	if !version.RequiresContext() {
		return fmt.Sprintf("**Transcript to Analyze:**\n```\n%s\n```", transcript), nil
	}

	rounded := make(map[emotion.Label]float64, len(profile))
	for l, v := range profile {
		rounded[l] = math.Round(v*10000) / 10000
	}
	profileJSON, err := json.MarshalIndent(rounded, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal emotion profile: %w", err)
	}

	return fmt.Sprintf(
		"**Transcript to Analyze:**\n```\n%s\n```\n\n**Emotional Profile Context:**\n```json\n%s\n```",
		transcript, profileJSON), nil
}

type openAIRequest struct {
	Model          string          `json:"model"`
	Messages       []openAIMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) completeOpenAI(ctx context.Context, system, user string) (string, error) {
	if c.cfg.OpenAIAPIKey == "" {
		return "", fmt.Errorf("openai: %w", ErrMissingAPIKey)
	}

	body := openAIRequest{
		Model: c.cfg.OpenAIModel,
		Messages: []openAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	body.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.OpenAIBaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.OpenAIAPIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai %s: %s", resp.Status, string(b))
	}

	var out openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("openai decode: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string `json:"response_mime_type"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (c *Client) completeGemini(ctx context.Context, system, user string) (string, error) {
	if c.cfg.GeminiAPIKey == "" {
		return "", fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}

	var body geminiRequest
	body.Contents = []geminiContent{{Parts: []geminiPart{{Text: system + "\n\n" + user}}}}
	body.GenerationConfig.ResponseMimeType = "application/json"

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.GeminiBaseURL, c.cfg.GeminiModel, c.cfg.GeminiAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini %s: %s", resp.Status, string(b))
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini decode: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
