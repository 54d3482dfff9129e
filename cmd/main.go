package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/quynguyn1525/Translate-Bot/internal/alerts"
	"github.com/quynguyn1525/Translate-Bot/internal/artifact"
	"github.com/quynguyn1525/Translate-Bot/internal/config"
	"github.com/quynguyn1525/Translate-Bot/internal/delivery"
	"github.com/quynguyn1525/Translate-Bot/internal/pipeline"
	"github.com/quynguyn1525/Translate-Bot/internal/speech"
	"github.com/quynguyn1525/Translate-Bot/internal/telegram"
	"github.com/quynguyn1525/Translate-Bot/internal/transcode"
	"github.com/quynguyn1525/Translate-Bot/internal/translate"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// =========================================================================
	// ARTIFACT STORE / RETENTION
	// =========================================================================

	store, err := artifact.NewStore(cfg.DownloadsDir)
	if err != nil {
		log.Fatalf("artifact store: %v", err)
	}

	sweeper := artifact.NewSweeper(store, cfg.RetentionMaxAge, cfg.SweepInterval)
	go sweeper.Run(ctx)

	// =========================================================================
	// ENGINES (STT / TTS / TRANSLATE)
	// =========================================================================

	var stt speech.STTClient
	switch cfg.STTEngine {
	case "google":
		gc, err := speech.NewGoogleClient(ctx, cfg.RecognitionLocale)
		if err != nil {
			log.Fatalf("google stt: %v", err)
		}
		defer gc.Close()
		stt = gc
	case "deepgram":
		stt = speech.NewDeepgramClient(cfg.DeepgramKey, cfg.SourceLang)
	default:
		stt = speech.NewWhisperClient(cfg.OpenAIKey, cfg.SourceLang)
	}

	var tts speech.TTSClient
	switch cfg.TTSEngine {
	case "elevenlabs":
		tts = speech.NewElevenLabsClient(cfg.ElevenLabsKey, cfg.ElevenLabsVoiceID)
	default:
		tts = speech.NewGTTSClient(cfg.TargetLang)
	}

	var translator translate.Translator
	switch cfg.TranslateEngine {
	case "openai":
		translator = translate.NewOpenAIClient(cfg.OpenAIKey, cfg.SourceLang, cfg.TargetLang)
	default:
		translator = translate.NewMyMemoryClient(cfg.SourceLang, cfg.TargetLang, cfg.MyMemoryEmail)
	}

	speechService := speech.NewService(stt, tts)
	transcoder := transcode.NewFFmpeg()

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	alertInfra := alerts.NewTelegramNotifier(cfg.AdminChatID)
	alertService := alerts.NewService(alertInfra)

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("telegram init: %v", err)
	}

	pipe := pipeline.NewService(
		store,
		transcoder,
		speechService,
		translator,
		telegram.NewReplier(bot),
		alertService,
		cfg.SourceLang,
		cfg.TargetLang,
		cfg.StageTimeout,
	)

	botApp := telegram.NewBotApp(bot, cfg, pipe)
	alertInfra.SetBot(bot)

	go botApp.Run(ctx)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	statusHandler := delivery.NewStatusHandler(store, sweeper, zl)
	delivery.RegisterRoutes(r, statusHandler)

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "translate-bot",
	})

	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
