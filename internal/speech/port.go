package speech

import "context"

// STTClient turns a WAV file into text.
//
// An empty string with a nil error is the explicit "no speech recognized"
// signal and is a valid outcome; a non-nil error means the engine or the
// request failed. Implementations must never collapse the two.
type STTClient interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}

// TTSClient renders text as a playable audio file at outPath.
type TTSClient interface {
	Synthesize(ctx context.Context, text, outPath string) error
}
