package llm

import "fmt"

// dimensionSpec declares one required key of a prompt's JSON output and
// the numeric range its score must fall in.
type dimensionSpec struct {
	Key string
	Min float64
	Max float64
}

// schemas is the closed registry of expected output shapes, one per
// prompt version. Responses are validated against it explicitly; a
// missing key or out-of-range score is an error, never a silent
// default.
var schemas = map[PromptVersion][]dimensionSpec{
	PromptV1: {
		{Key: "nuance", Min: -5, Max: 5},
		{Key: "creativity_vs_order", Min: -5, Max: 5},
		{Key: "safety_vs_threat", Min: -5, Max: 5},
		{Key: "compassion_vs_contempt", Min: -5, Max: 5},
		{Key: "reporting_vs_opinion", Min: -5, Max: 5},
	},
	PromptV1Context: {
		{Key: "nuance", Min: -5, Max: 5},
		{Key: "creativity_vs_order", Min: -5, Max: 5},
		{Key: "safety_vs_threat", Min: -5, Max: 5},
		{Key: "compassion_vs_contempt", Min: -5, Max: 5},
		{Key: "reporting_vs_opinion", Min: -5, Max: 5},
	},
	PromptV2Streamlined: {
		{Key: "compassion_vs_contempt", Min: 0, Max: 100},
		{Key: "creativity_vs_order", Min: -5, Max: 5},
		{Key: "safety_vs_threat", Min: -5, Max: 5},
		{Key: "reporting_vs_opinion", Min: -5, Max: 5},
	},
	PromptV5AllDimensions: {
		{Key: "opinion_news", Min: 1, Max: 5},
		{Key: "nuance", Min: 1, Max: 5},
		{Key: "order_creativity", Min: 1, Max: 5},
		{Key: "prevention_promotion", Min: 1, Max: 5},
		{Key: "compassion_contempt", Min: 1, Max: 5},
	},
	PromptV5AllDimensionsContext: {
		{Key: "opinion_news", Min: 1, Max: 5},
		{Key: "nuance", Min: 1, Max: 5},
		{Key: "order_creativity", Min: 1, Max: 5},
		{Key: "prevention_promotion", Min: 1, Max: 5},
		{Key: "compassion_contempt", Min: 1, Max: 5},
	},
}

// Dimensions returns the required dimension keys for a prompt version,
// in declaration order.
func Dimensions(v PromptVersion) []string {
	specs := schemas[v]
	keys := make([]string, len(specs))
	for i, s := range specs {
		keys[i] = s.Key
	}
	return keys
}

// SchemaError describes a response that does not match its prompt's
// declared output schema.
type SchemaError struct {
	Version PromptVersion
	Key     string
	Reason  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("prompt %s: dimension %q: %s", e.Version, e.Key, e.Reason)
}

// validateResponse checks a parsed response against the schema for
// version. Extra keys are tolerated; missing or out-of-range
// dimensions are not.
func validateResponse(version PromptVersion, result map[string]DimensionResult) error {
	for _, spec := range schemas[version] {
		dim, ok := result[spec.Key]
		if !ok {
			return &SchemaError{Version: version, Key: spec.Key, Reason: "missing from response"}
		}
		if dim.Score < spec.Min || dim.Score > spec.Max {
			return &SchemaError{
				Version: version,
				Key:     spec.Key,
				Reason:  fmt.Sprintf("score %v outside expected range [%v,%v]", dim.Score, spec.Min, spec.Max),
			}
		}
	}
	return nil
}
