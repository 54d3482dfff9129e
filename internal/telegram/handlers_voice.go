package telegram

import (
	"context"
	"log"
	"regexp"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/quynguyn1525/Translate-Bot/internal/pipeline"
)

var requestIDPattern = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// sanitizeID turns a Telegram file ID into a filesystem-safe request ID.
func sanitizeID(fileID string) string {
	return requestIDPattern.ReplaceAllString(fileID, "_")
}

func (app *BotApp) handleVoice(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	fileID := msg.Voice.FileID

	log.Printf("[voice] start chat=%d fileID=%s dur=%ds", chatID, fileID, msg.Voice.Duration)

	file, err := app.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		log.Printf("[voice] get file fail chat=%d err=%v", chatID, err)
		app.replyText(chatID, "⚠️ Couldn't get the voice message.")
		return
	}

	req := pipeline.Request{
		ID:       sanitizeID(fileID),
		ChatID:   chatID,
		FileURL:  file.Link(app.bot.Token),
		Duration: msg.Voice.Duration,
	}

	app.pipeline.Run(ctx, req)
}
