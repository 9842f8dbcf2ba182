package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const elevenLabsBaseURL = "https://api.elevenlabs.io/v1"

// SpeechParams mirror the output-device settings the assistant asks for:
// slightly faster, slightly lower than the platform default.
type SpeechParams struct {
	Rate   float64 `json:"rate"`
	Pitch  float64 `json:"pitch"`
	Volume float64 `json:"volume"`
	Voice  string  `json:"voice,omitempty"`
}

func DefaultSpeechParams() SpeechParams {
	return SpeechParams{Rate: 1.05, Pitch: 0.95, Volume: 1.0}
}

type ItfTTS interface {
	GenerateAudio(ctx context.Context, text string) ([]byte, error)
	ListVoices(ctx context.Context) ([]Voice, error)
	Enabled() bool
}

type ttsService struct {
	apiKey  string
	voiceID string
	client  *http.Client
}

func NewTTSService() ItfTTS {
	return &ttsService{
		apiKey:  os.Getenv("ELEVENLABS_API_KEY"),
		voiceID: os.Getenv("ELEVENLABS_VOICE_ID"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether server-side synthesis is configured. When it is
// not, speak events still carry text and speech params for client-side
// synthesis.
func (t *ttsService) Enabled() bool {
	return t.apiKey != ""
}

func (t *ttsService) GenerateAudio(ctx context.Context, text string) ([]byte, error) {
	url := fmt.Sprintf("%s/text-to-speech/%s", elevenLabsBaseURL, t.voiceID)

	requestBody := map[string]interface{}{
		"text":     text,
		"model_id": "eleven_multilingual_v2",
		"voice_settings": map[string]interface{}{
			"stability":         0.5,
			"similarity_boost":  0.8,
			"style":             0.0,
			"use_speaker_boost": true,
		},
	}

	jsonData, err := jsoniter.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", t.apiKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ElevenLabs API error: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
