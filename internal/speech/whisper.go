package speech

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperClient transcribes through the OpenAI audio endpoint.
type WhisperClient struct {
	client *openai.Client
	// ISO 639-1 tag of the expected speech, e.g. "km"
	language string
}

func NewWhisperClient(apiKey, language string) *WhisperClient {
	return &WhisperClient{
		client:   openai.NewClient(apiKey),
		language: language,
	}
}

func (c *WhisperClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
		Language: c.language,
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription: %w", err)
	}

	// whisper reports silence as empty text, which is the no-speech signal
	return strings.TrimSpace(resp.Text), nil
}
