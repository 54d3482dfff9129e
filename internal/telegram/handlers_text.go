package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/quynguyn1525/Translate-Bot/internal/pipeline"
)

func helpText(sourceLang, targetLang string) string {
	return fmt.Sprintf(
		"Send me a voice message in %s and I'll reply with the %s translation, as text and as audio.",
		pipeline.LangName(sourceLang),
		pipeline.LangName(targetLang),
	)
}

func (app *BotApp) handleText(msg *tgbotapi.Message) {
	app.replyText(msg.Chat.ID, helpText(app.cfg.SourceLang, app.cfg.TargetLang))
}
