package emotion

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVocabulary(t *testing.T) {
	assert.NoError(t, ValidateVocabulary())
}

func TestAllLabels(t *testing.T) {
	t.Run("has 28 labels", func(t *testing.T) {
		assert.Len(t, AllLabels, 28)
	})

	t.Run("is sorted and unique", func(t *testing.T) {
		assert.True(t, sort.SliceIsSorted(AllLabels, func(i, j int) bool {
			return AllLabels[i] < AllLabels[j]
		}))
		seen := make(map[Label]struct{}, len(AllLabels))
		for _, l := range AllLabels {
			_, dup := seen[l]
			assert.False(t, dup, "duplicate label %q", l)
			seen[l] = struct{}{}
		}
	})

	t.Run("contains neutral", func(t *testing.T) {
		assert.True(t, Known(Neutral))
	})
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("admiration"))
	assert.True(t, Known("surprise"))
	assert.False(t, Known("schadenfreude"))
	assert.False(t, Known(""))
}

func TestIsAttitude(t *testing.T) {
	t.Run("respect labels", func(t *testing.T) {
		assert.True(t, IsAttitude("admiration"))
		assert.True(t, IsAttitude("approval"))
		assert.True(t, IsAttitude("caring"))
	})

	t.Run("contempt labels", func(t *testing.T) {
		assert.True(t, IsAttitude("annoyance"))
		assert.True(t, IsAttitude("disapproval"))
		assert.True(t, IsAttitude("disgust"))
	})

	t.Run("everything else", func(t *testing.T) {
		assert.False(t, IsAttitude("joy"))
		assert.False(t, IsAttitude(Neutral))
	})
}

func TestNewProfile(t *testing.T) {
	p := NewProfile()

	assert.Len(t, p, len(AllLabels))
	for _, l := range AllLabels {
		v, ok := p[l]
		assert.True(t, ok, "label %q missing", l)
		assert.Equal(t, 0.0, v)
	}
}
