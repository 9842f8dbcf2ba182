package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickVoicePrefersEnglishMale(t *testing.T) {
	voices := []Voice{
		{VoiceID: "fr-1", Name: "Claire", Labels: VoiceLabels{Gender: "female", Language: "fr"}},
		{VoiceID: "en-f", Name: "Alice", Labels: VoiceLabels{Gender: "female", Language: "en"}},
		{VoiceID: "en-m", Name: "Brian", Labels: VoiceLabels{Gender: "male", Language: "en"}},
	}

	assert.Equal(t, "en-m", PickVoice(voices, "default"))
}

func TestPickVoiceNameHeuristics(t *testing.T) {
	voices := []Voice{
		{VoiceID: "en-f", Name: "Alice", Labels: VoiceLabels{Language: "en-US"}},
		{VoiceID: "en-d", Name: "Daniel", Labels: VoiceLabels{Language: "en-GB"}},
	}

	assert.Equal(t, "en-d", PickVoice(voices, "default"))
}

func TestPickVoiceFallsBackToAnyEnglish(t *testing.T) {
	voices := []Voice{
		{VoiceID: "de-1", Name: "Hans", Labels: VoiceLabels{Gender: "male", Language: "de"}},
		{VoiceID: "en-f", Name: "Alice", Labels: VoiceLabels{Gender: "female", Language: "en"}},
	}

	assert.Equal(t, "en-f", PickVoice(voices, "default"))
}

func TestPickVoiceFallsBackToDefault(t *testing.T) {
	voices := []Voice{
		{VoiceID: "de-1", Name: "Hans", Labels: VoiceLabels{Gender: "male", Language: "de"}},
	}

	assert.Equal(t, "default", PickVoice(voices, "default"))
	assert.Equal(t, "", PickVoice(nil, ""))
}

func TestDefaultSpeechParams(t *testing.T) {
	params := DefaultSpeechParams()
	assert.InDelta(t, 1.05, params.Rate, 0.001)
	assert.InDelta(t, 0.95, params.Pitch, 0.001)
	assert.InDelta(t, 1.0, params.Volume, 0.001)
}
