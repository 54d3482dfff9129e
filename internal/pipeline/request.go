package pipeline

import "fmt"

// Request is one inbound voice message. It exists only for the duration of
// one pipeline run and is never persisted; its ID namespaces every artifact
// the run creates.
type Request struct {
	ID      string
	ChatID  int64
	FileURL string
	// voice length in seconds, as reported by the transport
	Duration int
}

// Stage names one step of the voice-to-voice pipeline.
type Stage string

const (
	StageDownload   Stage = "download"
	StageTranscode  Stage = "transcode"
	StageTranscribe Stage = "transcribe"
	StageTranslate  Stage = "translate"
	StageSynthesize Stage = "synthesize"
)

// StageError records which capability failed so callers can pick the
// user-facing message and alerts can name the stage.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
