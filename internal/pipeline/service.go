package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/quynguyn1525/Translate-Bot/internal/artifact"
	"github.com/quynguyn1525/Translate-Bot/internal/speech"
	"github.com/quynguyn1525/Translate-Bot/internal/transcode"
	"github.com/quynguyn1525/Translate-Bot/internal/translate"
)

// Service sequences the stages of one voice request: download -> transcode ->
// transcribe -> translate -> text reply -> synthesize -> audio reply. Every
// run deletes its own artifacts on the way out, whichever branch it took.
type Service struct {
	store        *artifact.Store
	transcoder   transcode.Transcoder
	speech       *speech.Service
	translator   translate.Translator
	replier      Replier
	notifier     Notifier
	sourceLang   string
	targetLang   string
	stageTimeout time.Duration
	httpCli      *http.Client
}

func NewService(
	store *artifact.Store,
	transcoder transcode.Transcoder,
	speechSvc *speech.Service,
	translator translate.Translator,
	replier Replier,
	notifier Notifier,
	sourceLang, targetLang string,
	stageTimeout time.Duration,
) *Service {
	return &Service{
		store:        store,
		transcoder:   transcoder,
		speech:       speechSvc,
		translator:   translator,
		replier:      replier,
		notifier:     notifier,
		sourceLang:   sourceLang,
		targetLang:   targetLang,
		stageTimeout: stageTimeout,
		httpCli:      &http.Client{},
	}
}

// Run executes the pipeline for one request. Exactly one primary text reply
// goes out per run; the audio reply only follows a delivered primary reply.
func (s *Service) Run(ctx context.Context, req Request) {
	start := time.Now()
	log.Printf("[pipeline] start id=%s chat=%d dur=%ds", req.ID, req.ChatID, req.Duration)

	// cleanup on every exit path; the retention sweeper catches anything
	// a crashed process leaves behind
	defer s.store.DeleteAll(req.ID)

	if err := s.download(ctx, req); err != nil {
		s.fail(ctx, req, &StageError{Stage: StageDownload, Err: err})
		return
	}

	wavPath := s.store.Path(req.ID, artifact.KindTranscoded)
	if err := s.transcoder.ToWAV(ctx, s.store.Path(req.ID, artifact.KindRaw), wavPath); err != nil {
		s.fail(ctx, req, &StageError{Stage: StageTranscode, Err: err})
		return
	}

	transcript, err := s.transcribe(ctx, wavPath)
	if err != nil {
		s.fail(ctx, req, &StageError{Stage: StageTranscribe, Err: err})
		return
	}

	if transcript == "" {
		// nothing recognizable in the audio: a terminal outcome, not a failure
		log.Printf("[pipeline] empty transcript id=%s", req.ID)
		s.reply(req, msgEmptyTranscript)
		return
	}
	log.Printf("[pipeline] transcript id=%s %q", req.ID, transcript)

	translation, err := s.translateText(ctx, transcript)
	if err != nil {
		s.fail(ctx, req, &StageError{Stage: StageTranslate, Err: err})
		return
	}
	log.Printf("[pipeline] translation id=%s %q", req.ID, translation)

	if err := s.replier.ReplyText(req.ChatID, s.formatReply(transcript, translation)); err != nil {
		log.Printf("[pipeline] send reply fail id=%s err=%v", req.ID, err)
		return
	}

	// best effort: the delivered text reply already stands as the result
	s.synthesize(ctx, req, translation)

	log.Printf("[pipeline][%.1fs] done id=%s", time.Since(start).Seconds(), req.ID)
}

func (s *Service) download(ctx context.Context, req Request) error {
	ctx, cancel := context.WithTimeout(ctx, s.stageTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.FileURL, nil)
	if err != nil {
		return err
	}

	resp, err := s.httpCli.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if _, err := s.store.Put(req.ID, artifact.KindRaw, data); err != nil {
		return err
	}

	log.Printf("[pipeline] downloaded id=%s %d bytes", req.ID, len(data))
	return nil
}

func (s *Service) transcribe(ctx context.Context, wavPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.stageTimeout)
	defer cancel()

	text, err := s.speech.Transcribe(ctx, wavPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s *Service) translateText(ctx context.Context, transcript string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.stageTimeout)
	defer cancel()

	return s.translator.Translate(ctx, transcript)
}

func (s *Service) synthesize(ctx context.Context, req Request, translation string) {
	outPath := s.store.Path(req.ID, artifact.KindSynthesized)

	sctx, cancel := context.WithTimeout(ctx, s.stageTimeout)
	defer cancel()

	if err := s.speech.Synthesize(sctx, translation, outPath); err != nil {
		log.Printf("[pipeline] synthesize fail id=%s err=%v", req.ID, err)
		s.notify(ctx, req, &StageError{Stage: StageSynthesize, Err: err})
		return
	}

	if d, err := speech.AudioDuration(outPath); err == nil {
		log.Printf("[pipeline] synthesized id=%s len=%s", req.ID, d.Round(100*time.Millisecond))
	}

	caption := fmt.Sprintf("🔊 %s (TTS)", LangName(s.targetLang))
	if err := s.replier.ReplyAudio(req.ChatID, outPath, caption); err != nil {
		log.Printf("[pipeline] send audio fail id=%s err=%v", req.ID, err)
	}
}

func (s *Service) formatReply(transcript, translation string) string {
	return fmt.Sprintf("%s %s (transcript):\n%s\n\n%s %s (translation):\n%s",
		LangFlag(s.sourceLang), LangName(s.sourceLang), transcript,
		LangFlag(s.targetLang), LangName(s.targetLang), translation)
}

func (s *Service) fail(ctx context.Context, req Request, serr *StageError) {
	log.Printf("[pipeline] %s fail id=%s err=%v", serr.Stage, req.ID, serr.Err)
	s.notify(ctx, req, serr)
	s.reply(req, failureMessage(serr.Stage))
}

func (s *Service) reply(req Request, text string) {
	if err := s.replier.ReplyText(req.ChatID, text); err != nil {
		log.Printf("[pipeline] send reply fail id=%s err=%v", req.ID, err)
	}
}

func (s *Service) notify(ctx context.Context, req Request, serr *StageError) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, serr,
		fmt.Sprintf("Stage: %s\nRequest: %s\nChat: %d", serr.Stage, req.ID, req.ChatID))
}
