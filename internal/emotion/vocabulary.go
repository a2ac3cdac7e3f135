package emotion

import "fmt"

// Label identifies one emotion in the fixed GoEmotions vocabulary.
type Label string

const Neutral Label = "neutral"

// Respect and Contempt are the disjoint label subsets used for the
// bipolar attitude score. They are the single source of truth; no call
// site redefines them.
var (
	Respect = map[Label]struct{}{
		"admiration": {},
		"approval":   {},
		"caring":     {},
	}

	Contempt = map[Label]struct{}{
		"annoyance":   {},
		"disapproval": {},
		"disgust":     {},
	}

	// NonDominant labels are skipped when picking the dominant emotion.
	NonDominant = map[Label]struct{}{
		Neutral: {},
	}
)

// AllLabels is the canonical vocabulary ordering. Every argmax
// tie-break resolves to the first label in this slice, so it must stay
// sorted and stable across releases.
var AllLabels = []Label{
	"admiration",
	"amusement",
	"anger",
	"annoyance",
	"approval",
	"caring",
	"confusion",
	"curiosity",
	"desire",
	"disappointment",
	"disapproval",
	"disgust",
	"embarrassment",
	"excitement",
	"fear",
	"gratitude",
	"grief",
	"joy",
	"love",
	"nervousness",
	"neutral",
	"optimism",
	"pride",
	"realization",
	"relief",
	"remorse",
	"sadness",
	"surprise",
}

var labelSet = func() map[Label]struct{} {
	s := make(map[Label]struct{}, len(AllLabels))
	for _, l := range AllLabels {
		s[l] = struct{}{}
	}
	return s
}()

// Known reports whether l belongs to the fixed vocabulary.
func Known(l Label) bool {
	_, ok := labelSet[l]
	return ok
}

// IsAttitude reports whether l belongs to Respect or Contempt.
func IsAttitude(l Label) bool {
	if _, ok := Respect[l]; ok {
		return true
	}
	_, ok := Contempt[l]
	return ok
}

// ValidateVocabulary checks the structural invariants of the label
// sets. It runs once at startup and any failure is fatal.
func ValidateVocabulary() error {
	for l := range Respect {
		if _, ok := Contempt[l]; ok {
			return fmt.Errorf("label %q is in both respect and contempt sets", l)
		}
		if !Known(l) {
			return fmt.Errorf("respect label %q is not in the vocabulary", l)
		}
	}
	for l := range Contempt {
		if !Known(l) {
			return fmt.Errorf("contempt label %q is not in the vocabulary", l)
		}
	}
	for l := range NonDominant {
		if !Known(l) {
			return fmt.Errorf("non-dominant label %q is not in the vocabulary", l)
		}
	}
	for i := 1; i < len(AllLabels); i++ {
		if AllLabels[i-1] >= AllLabels[i] {
			return fmt.Errorf("vocabulary ordering broken at %q", AllLabels[i])
		}
	}
	return nil
}

// Profile maps every vocabulary label to an averaged probability in
// [0,1]. Probabilities are independent per label and do not sum to 1.
type Profile map[Label]float64

// NewProfile returns a profile with every vocabulary label present at
// zero.
func NewProfile() Profile {
	p := make(Profile, len(AllLabels))
	for _, l := range AllLabels {
		p[l] = 0
	}
	return p
}
