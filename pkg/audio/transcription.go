package audio

import (
	"context"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

type ItfTranscriber interface {
	TranscribeAudio(ctx context.Context, filePath string) (string, error)
}

type transcriptionService struct {
	client *openai.Client
}

func NewTranscriptionService() ItfTranscriber {
	apiKey := os.Getenv("OPENAI_API_KEY")
	return &transcriptionService{client: openai.NewClient(apiKey)}
}

// TranscribeAudio runs Whisper over a locally saved utterance recording and
// returns the recognized text.
func (t *transcriptionService) TranscribeAudio(ctx context.Context, filePath string) (string, error) {
	if _, err := os.Stat(filePath); err != nil {
		return "", err
	}

	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
		Language: "en",
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}
