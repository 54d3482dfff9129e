package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Replier sends pipeline results back into the originating chat.
type Replier struct {
	bot *tgbotapi.BotAPI
}

func NewReplier(bot *tgbotapi.BotAPI) *Replier {
	return &Replier{bot: bot}
}

func (r *Replier) ReplyText(chatID int64, text string) error {
	_, err := r.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (r *Replier) ReplyAudio(chatID int64, path, caption string) error {
	audio := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(path))
	audio.Caption = caption
	_, err := r.bot.Send(audio)
	return err
}
