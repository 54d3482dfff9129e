package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is read once at process start. There is no runtime reconfiguration.
type Config struct {
	TelegramToken string
	Port          string

	DownloadsDir    string
	RetentionMaxAge time.Duration
	SweepInterval   time.Duration

	// One translation pair per process. RecognitionLocale is the BCP-47 tag
	// for locale-addressed STT engines and must stay consistent with SourceLang.
	SourceLang        string
	TargetLang        string
	RecognitionLocale string

	STTEngine       string // whisper | google | deepgram
	TTSEngine       string // gtts | elevenlabs
	TranslateEngine string // mymemory | openai

	StageTimeout time.Duration

	OpenAIKey         string
	DeepgramKey       string
	ElevenLabsKey     string
	ElevenLabsVoiceID string
	MyMemoryEmail     string

	// 0 disables admin alerts.
	AdminChatID int64
}

func Load() (*Config, error) {
	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		Port:          getEnv("PORT", "8080"),

		DownloadsDir: getEnv("DOWNLOADS_DIR", "downloads"),

		SourceLang:        getEnv("SOURCE_LANG", "km"),
		TargetLang:        getEnv("TARGET_LANG", "vi"),
		RecognitionLocale: getEnv("RECOGNITION_LOCALE", "km-KH"),

		STTEngine:       getEnv("STT_ENGINE", "whisper"),
		TTSEngine:       getEnv("TTS_ENGINE", "gtts"),
		TranslateEngine: getEnv("TRANSLATE_ENGINE", "mymemory"),

		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		DeepgramKey:       os.Getenv("DEEPGRAM_API_KEY"),
		ElevenLabsKey:     os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoiceID: os.Getenv("ELEVENLABS_VOICE_ID"),
		MyMemoryEmail:     os.Getenv("MYMEMORY_EMAIL"),
	}

	var err error
	if cfg.RetentionMaxAge, err = getDuration("RETENTION_MAX_AGE", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = getDuration("SWEEP_INTERVAL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.StageTimeout, err = getDuration("STAGE_TIMEOUT", 90*time.Second); err != nil {
		return nil, err
	}

	if raw := os.Getenv("ADMIN_CHAT_ID"); raw != "" {
		cfg.AdminChatID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_CHAT_ID: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is not set")
	}
	if c.RetentionMaxAge <= 0 {
		return fmt.Errorf("RETENTION_MAX_AGE must be positive")
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be positive")
	}
	if c.StageTimeout <= 0 {
		return fmt.Errorf("STAGE_TIMEOUT must be positive")
	}
	if c.SourceLang == "" || c.TargetLang == "" {
		return fmt.Errorf("SOURCE_LANG and TARGET_LANG must be set")
	}

	switch c.STTEngine {
	case "whisper":
		if c.OpenAIKey == "" {
			return fmt.Errorf("STT_ENGINE=whisper requires OPENAI_API_KEY")
		}
	case "google":
		// uses Application Default Credentials
	case "deepgram":
		if c.DeepgramKey == "" {
			return fmt.Errorf("STT_ENGINE=deepgram requires DEEPGRAM_API_KEY")
		}
	default:
		return fmt.Errorf("unknown STT_ENGINE %q", c.STTEngine)
	}

	switch c.TTSEngine {
	case "gtts":
	case "elevenlabs":
		if c.ElevenLabsKey == "" || c.ElevenLabsVoiceID == "" {
			return fmt.Errorf("TTS_ENGINE=elevenlabs requires ELEVENLABS_API_KEY and ELEVENLABS_VOICE_ID")
		}
	default:
		return fmt.Errorf("unknown TTS_ENGINE %q", c.TTSEngine)
	}

	switch c.TranslateEngine {
	case "mymemory":
	case "openai":
		if c.OpenAIKey == "" {
			return fmt.Errorf("TRANSLATE_ENGINE=openai requires OPENAI_API_KEY")
		}
	default:
		return fmt.Errorf("unknown TRANSLATE_ENGINE %q", c.TranslateEngine)
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
