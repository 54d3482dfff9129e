package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "test-token")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "downloads", cfg.DownloadsDir)
	assert.Equal(t, 24*time.Hour, cfg.RetentionMaxAge)
	assert.Equal(t, time.Hour, cfg.SweepInterval)
	assert.Equal(t, 90*time.Second, cfg.StageTimeout)
	assert.Equal(t, "km", cfg.SourceLang)
	assert.Equal(t, "vi", cfg.TargetLang)
	assert.Equal(t, "km-KH", cfg.RecognitionLocale)
	assert.Equal(t, "whisper", cfg.STTEngine)
	assert.Equal(t, "gtts", cfg.TTSEngine)
	assert.Equal(t, "mymemory", cfg.TranslateEngine)
	assert.EqualValues(t, 0, cfg.AdminChatID)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "test-token")
	t.Setenv("DOWNLOADS_DIR", "/tmp/voices")
	t.Setenv("RETENTION_MAX_AGE", "30m")
	t.Setenv("SWEEP_INTERVAL", "5m")
	t.Setenv("SOURCE_LANG", "th")
	t.Setenv("TARGET_LANG", "en")
	t.Setenv("RECOGNITION_LOCALE", "th-TH")
	t.Setenv("STT_ENGINE", "deepgram")
	t.Setenv("DEEPGRAM_API_KEY", "dg-test")
	t.Setenv("ADMIN_CHAT_ID", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/voices", cfg.DownloadsDir)
	assert.Equal(t, 30*time.Minute, cfg.RetentionMaxAge)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.Equal(t, "th", cfg.SourceLang)
	assert.Equal(t, "en", cfg.TargetLang)
	assert.Equal(t, "th-TH", cfg.RecognitionLocale)
	assert.EqualValues(t, 42, cfg.AdminChatID)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_TOKEN")
}

func TestLoadEngineValidation(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "test-token")

	t.Run("whisper without key", func(t *testing.T) {
		t.Setenv("STT_ENGINE", "whisper")
		t.Setenv("OPENAI_API_KEY", "")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("google needs no key", func(t *testing.T) {
		t.Setenv("STT_ENGINE", "google")
		t.Setenv("OPENAI_API_KEY", "")
		_, err := Load()
		require.NoError(t, err)
	})

	t.Run("unknown engine", func(t *testing.T) {
		t.Setenv("STT_ENGINE", "bogus")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown STT_ENGINE")
	})

	t.Run("elevenlabs without voice", func(t *testing.T) {
		t.Setenv("STT_ENGINE", "google")
		t.Setenv("TTS_ENGINE", "elevenlabs")
		t.Setenv("ELEVENLABS_API_KEY", "xi-test")
		t.Setenv("ELEVENLABS_VOICE_ID", "")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ELEVENLABS_VOICE_ID")
	})
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "test-token")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SWEEP_INTERVAL", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SWEEP_INTERVAL")
}
