package speech

import (
	"context"
	"fmt"
	"os"
	"strings"

	gspeech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
)

// GoogleClient recognizes speech through the Google Cloud Speech API.
// Authentication relies on Application Default Credentials.
type GoogleClient struct {
	client *gspeech.Client
	// BCP-47 locale of the expected speech, e.g. "km-KH"
	locale string
}

func NewGoogleClient(ctx context.Context, locale string) (*GoogleClient, error) {
	client, err := gspeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create speech client: %w", err)
	}
	return &GoogleClient{
		client: client,
		locale: locale,
	}, nil
}

func (c *GoogleClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	resp, err := c.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: 16000,
			LanguageCode:    c.locale,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: data},
		},
	})
	if err != nil {
		return "", fmt.Errorf("google recognize: %w", err)
	}

	// zero results means the engine heard no speech, not that it failed
	var sb strings.Builder
	for _, res := range resp.Results {
		if len(res.Alternatives) == 0 {
			continue
		}
		sb.WriteString(res.Alternatives[0].Transcript)
	}
	return strings.TrimSpace(sb.String()), nil
}

func (c *GoogleClient) Close() error {
	return c.client.Close()
}
