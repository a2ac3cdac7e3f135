package scoring

import (
	"fmt"

	"github.com/peacelens/transcript-scorer/internal/emotion"
	"github.com/peacelens/transcript-scorer/internal/llm"
)

// MethodKind distinguishes the scoring pipelines.
type MethodKind string

const (
	KindRobertaPlain   MethodKind = "roberta_plain"
	KindRobertaValence MethodKind = "roberta_valence"
	KindLLM            MethodKind = "llm"
)

// DimCompassionContempt is the one dimension the classifier-based
// methods can score. LLM methods score whatever dimensions their
// prompt version declares.
const DimCompassionContempt = "compassion_contempt"

// Method tags which pipeline produced a score set. It carries no
// behavior; the service dispatches on it and comparison tables label
// rows with its Name.
type Method struct {
	Kind          MethodKind
	PromptVersion llm.PromptVersion
	Provider      llm.Provider
}

// Name returns the stable identifier used for persistence and
// reporting, e.g. "roberta_valence" or "llm_v5_all_dimensions_openai".
func (m Method) Name() string {
	if m.Kind == KindLLM {
		return fmt.Sprintf("llm_%s_%s", m.PromptVersion, m.Provider)
	}
	return string(m.Kind)
}

// ParseMethod builds a Method from its wire representation.
func ParseMethod(kind, promptVersion, provider string) (Method, error) {
	switch MethodKind(kind) {
	case KindRobertaPlain, KindRobertaValence:
		return Method{Kind: MethodKind(kind)}, nil
	case KindLLM:
		m := Method{
			Kind:          KindLLM,
			PromptVersion: llm.PromptVersion(promptVersion),
			Provider:      llm.Provider(provider),
		}
		req := llm.ScoringRequest{PromptVersion: m.PromptVersion, Provider: m.Provider}
		if err := req.Validate(); err != nil {
			return Method{}, err
		}
		return m, nil
	default:
		return Method{}, fmt.Errorf("unknown scoring method %q", kind)
	}
}

// TranscriptScores is the outcome of running one method over one
// transcript. A nil score means normalization failed and the value is
// unavailable; the entry stays present so sample sizes remain
// auditable downstream.
type TranscriptScores struct {
	VideoID  string
	Method   string
	Scores   map[string]*float64
	Emotions *emotion.Result
}

// VideoScores pivots everything persisted for one video:
// method name -> dimension -> score (nil = unavailable).
type VideoScores struct {
	VideoID string
	Methods map[string]map[string]*float64
}
