package pipeline

// User-facing notices. Every failed run gets exactly one of these as its
// primary reply; internals stay in the logs.
const (
	msgDownloadFailed   = "⚠️ Couldn't download the voice message. Please try again."
	msgTranscodeFailed  = "⚠️ Couldn't convert the audio."
	msgTranscribeFailed = "⚠️ Speech recognition failed. Please try again later."
	msgTranslateFailed  = "⚠️ Couldn't translate the transcript. Please try again later."

	// distinct terminal outcome, not a failure
	msgEmptyTranscript = "I couldn't transcribe the audio. Try a clearer recording."
)

func failureMessage(stage Stage) string {
	switch stage {
	case StageDownload:
		return msgDownloadFailed
	case StageTranscode:
		return msgTranscodeFailed
	case StageTranscribe:
		return msgTranscribeFailed
	case StageTranslate:
		return msgTranslateFailed
	}
	return "⚠️ Something went wrong. Please try again."
}
