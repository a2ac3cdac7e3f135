// Package scale converts raw scores of mixed provenance (1-5 rubrics,
// -5..+5 rubrics, 0-100 percentages) onto a single comparable scale.
package scale

import (
	"errors"
	"math"

	"github.com/peacelens/transcript-scorer/internal/emotion"
)

// ErrUnknownRange is returned when a raw score falls outside every
// known source range. Callers must treat the score as unavailable;
// clamping an unrecognized value would fabricate a result.
var ErrUnknownRange = errors.New("score outside all known source ranges")

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// To1To5 normalizes a raw score onto the 1-5 scale. Source-range
// detection runs in precedence order; the ranges overlap by design and
// the first match wins:
//
//  1. [1,5]   already final, returned unchanged
//  2. [-5,5]  rubric output, (raw+5)/2
//  3. [0,100] percentage, raw/20 + 1
//
// A fourth [0,5] branch existed in earlier rubric drafts but is
// unreachable under this precedence (every value in [0,5] is caught by
// rule 1 or 2), so it is omitted.
//
// Results are rounded to 4 decimals and clamped to [1,5].
func To1To5(raw float64) (float64, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, ErrUnknownRange
	}

	switch {
	case raw >= 1 && raw <= 5:
		return round4(raw), nil
	case raw >= -5 && raw <= 5:
		return round4(clamp((raw+5)/2, 1, 5)), nil
	case raw >= 0 && raw <= 100:
		return round4(clamp(raw/20+1, 1, 5)), nil
	default:
		return 0, ErrUnknownRange
	}
}

// To0To5 is the 0-5 variant used by the all-models comparison path.
// Same detection precedence as To1To5, different target anchors:
// 1-5 shifts down by one, -5..+5 maps to (raw+5)/2, percentages map to
// raw/20.
func To0To5(raw float64) (float64, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, ErrUnknownRange
	}

	switch {
	case raw >= 1 && raw <= 5:
		return round4(clamp(raw-1, 0, 5)), nil
	case raw >= -5 && raw <= 5:
		return round4(clamp((raw+5)/2, 0, 5)), nil
	case raw >= 0 && raw <= 100:
		return round4(clamp(raw/20, 0, 5)), nil
	default:
		return 0, ErrUnknownRange
	}
}

// netAttitude is the mean respect probability minus the mean contempt
// probability, in [-1,1].
func netAttitude(profile emotion.Profile) float64 {
	var respectSum, contemptSum float64
	for l := range emotion.Respect {
		respectSum += profile[l]
	}
	for l := range emotion.Contempt {
		contemptSum += profile[l]
	}
	return respectSum/float64(len(emotion.Respect)) - contemptSum/float64(len(emotion.Contempt))
}

// RespectContemptTo1To5 scores a profile by net respect-vs-contempt:
// the net attitude in [-1,1] maps to 0-5 via 2.5 + net*2.5, then
// shifts to 1-5.
func RespectContemptTo1To5(profile emotion.Profile) float64 {
	score := 2.5 + netAttitude(profile)*2.5 + 1
	return round4(clamp(score, 1, 5))
}

// RespectContemptTo0To5 is the comparison-path variant without the
// final shift.
func RespectContemptTo0To5(profile emotion.Profile) float64 {
	score := 2.5 + netAttitude(profile)*2.5
	return round4(clamp(score, 0, 5))
}

// ValenceTo1To5 finalizes a valence scorer output, which is already on
// the 1-5 scale: clamp and round only.
func ValenceTo1To5(scaled float64) float64 {
	return round4(clamp(scaled, 1, 5))
}
