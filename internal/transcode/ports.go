package transcode

import "context"

// Transcoder converts an audio file of arbitrary container/codec into a
// mono 16 kHz PCM WAV file every recognition engine accepts.
type Transcoder interface {
	ToWAV(ctx context.Context, src, dst string) error
}
