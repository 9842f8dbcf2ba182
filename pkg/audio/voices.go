package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

type Voice struct {
	VoiceID string      `json:"voice_id"`
	Name    string      `json:"name"`
	Labels  VoiceLabels `json:"labels"`
}

type VoiceLabels struct {
	Gender   string `json:"gender"`
	Language string `json:"language"`
}

type voicesResponse struct {
	Voices []Voice `json:"voices"`
}

func (t *ttsService) ListVoices(ctx context.Context) ([]Voice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, elevenLabsBaseURL+"/voices", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", t.apiKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ElevenLabs API error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed voicesResponse
	if err := jsoniter.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}

	return parsed.Voices, nil
}

// PickVoice applies the assistant's voice preference: an English
// male-sounding voice first, then any English voice, then the fallback
// (platform default). The empty string means "let the client decide".
func PickVoice(voices []Voice, fallback string) string {
	for _, v := range voices {
		if isEnglish(v) && soundsMale(v) {
			return v.VoiceID
		}
	}
	for _, v := range voices {
		if isEnglish(v) {
			return v.VoiceID
		}
	}
	return fallback
}

func isEnglish(v Voice) bool {
	return strings.HasPrefix(strings.ToLower(v.Labels.Language), "en")
}

func soundsMale(v Voice) bool {
	if strings.EqualFold(v.Labels.Gender, "male") {
		return true
	}
	name := strings.ToLower(v.Name)
	return strings.Contains(name, "male") ||
		strings.Contains(name, "david") ||
		strings.Contains(name, "daniel")
}
