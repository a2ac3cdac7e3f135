package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensions(t *testing.T) {
	t.Run("v1 declares five bipolar dimensions", func(t *testing.T) {
		assert.Equal(t, []string{
			"nuance",
			"creativity_vs_order",
			"safety_vs_threat",
			"compassion_vs_contempt",
			"reporting_vs_opinion",
		}, Dimensions(PromptV1))
	})

	t.Run("context variants share their base schema", func(t *testing.T) {
		assert.Equal(t, Dimensions(PromptV1), Dimensions(PromptV1Context))
		assert.Equal(t, Dimensions(PromptV5AllDimensions), Dimensions(PromptV5AllDimensionsContext))
	})

	t.Run("unknown version yields no dimensions", func(t *testing.T) {
		assert.Empty(t, Dimensions(PromptVersion("v99")))
	})
}

func TestScoringRequestValidate(t *testing.T) {
	t.Run("valid combinations", func(t *testing.T) {
		for _, p := range []Provider{ProviderOpenAI, ProviderGemini} {
			for v := range schemas {
				req := ScoringRequest{PromptVersion: v, Provider: p}
				assert.NoError(t, req.Validate())
			}
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		req := ScoringRequest{PromptVersion: PromptV1, Provider: "claude"}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider")
	})

	t.Run("unknown prompt version", func(t *testing.T) {
		req := ScoringRequest{PromptVersion: "v0", Provider: ProviderOpenAI}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prompt version")
	})
}

func TestRequiresContext(t *testing.T) {
	assert.False(t, PromptV1.RequiresContext())
	assert.True(t, PromptV1Context.RequiresContext())
	assert.True(t, PromptV2Streamlined.RequiresContext())
	assert.False(t, PromptV5AllDimensions.RequiresContext())
	assert.True(t, PromptV5AllDimensionsContext.RequiresContext())
}

func TestValidateResponse(t *testing.T) {
	complete := func(version PromptVersion, score float64) map[string]DimensionResult {
		out := make(map[string]DimensionResult)
		for _, k := range Dimensions(version) {
			out[k] = DimensionResult{Score: score, Rationale: "because"}
		}
		return out
	}

	t.Run("complete response passes", func(t *testing.T) {
		assert.NoError(t, validateResponse(PromptV1, complete(PromptV1, 0)))
		assert.NoError(t, validateResponse(PromptV5AllDimensions, complete(PromptV5AllDimensions, 3)))
	})

	t.Run("extra keys are tolerated", func(t *testing.T) {
		resp := complete(PromptV1, 2)
		resp["overall_vibe"] = DimensionResult{Score: 9000}
		assert.NoError(t, validateResponse(PromptV1, resp))
	})

	t.Run("missing dimension fails", func(t *testing.T) {
		resp := complete(PromptV1, 0)
		delete(resp, "nuance")

		err := validateResponse(PromptV1, resp)

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "nuance", schemaErr.Key)
		assert.Contains(t, schemaErr.Reason, "missing")
	})

	t.Run("out-of-range score fails", func(t *testing.T) {
		resp := complete(PromptV5AllDimensions, 3)
		resp["nuance"] = DimensionResult{Score: 0}

		err := validateResponse(PromptV5AllDimensions, resp)

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "nuance", schemaErr.Key)
		assert.Contains(t, schemaErr.Reason, "outside expected range")
	})

	t.Run("v2 compassion accepts percentages", func(t *testing.T) {
		resp := complete(PromptV2Streamlined, 0)
		resp["compassion_vs_contempt"] = DimensionResult{Score: 87}
		assert.NoError(t, validateResponse(PromptV2Streamlined, resp))
	})
}

func TestSystemPrompts(t *testing.T) {
	for v := range schemas {
		prompt, ok := systemPrompts[v]
		assert.True(t, ok, "prompt version %s has no system prompt", v)
		assert.NotEmpty(t, prompt)
	}
}
