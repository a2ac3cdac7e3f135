// Package llm calls the prompted large-language-model collaborators
// and validates their JSON score output against per-prompt schemas.
package llm

import "fmt"

// Provider identifies which LLM backend serves a request.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// PromptVersion identifies one of the fixed, versioned scoring
// prompts. Each version has its own output schema.
type PromptVersion string

const (
	PromptV1                     PromptVersion = "v1"
	PromptV1Context              PromptVersion = "v1_context"
	PromptV2Streamlined          PromptVersion = "v2_streamlined"
	PromptV5AllDimensions        PromptVersion = "v5_all_dimensions"
	PromptV5AllDimensionsContext PromptVersion = "v5_all_dimensions_context"
)

// RequiresContext reports whether the prompt expects an emotion
// profile alongside the transcript.
func (v PromptVersion) RequiresContext() bool {
	switch v {
	case PromptV1Context, PromptV2Streamlined, PromptV5AllDimensionsContext:
		return true
	}
	return false
}

// ScoringRequest selects the prompt and provider for one analysis
// call. It is a closed variant: unknown combinations are rejected up
// front instead of falling through to a default prompt.
type ScoringRequest struct {
	PromptVersion PromptVersion
	Provider      Provider
}

// Validate rejects unknown providers and prompt versions.
func (r ScoringRequest) Validate() error {
	switch r.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unknown provider %q", r.Provider)
	}
	if _, ok := schemas[r.PromptVersion]; !ok {
		return fmt.Errorf("unknown prompt version %q", r.PromptVersion)
	}
	return nil
}

// DimensionResult is one scored dimension from an LLM response.
type DimensionResult struct {
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}
