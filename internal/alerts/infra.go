package alerts

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(chatID int64) *TelegramNotifier {
	return &TelegramNotifier{chatID: chatID}
}

// SetBot lets the bot be injected after it has been initialized.
func (n *TelegramNotifier) SetBot(bot *tgbotapi.BotAPI) {
	n.bot = bot
}

func (n *TelegramNotifier) Notify(ctx context.Context, err error, details string) {
	if n.chatID == 0 || n.bot == nil {
		log.Printf("[alerts] admin chat not configured, dropping: %v", err)
		return
	}

	text := fmt.Sprintf(
		"❗ Translate bot error\n\nError: %v\n\nDetails: %s",
		err,
		details,
	)

	msg := tgbotapi.NewMessage(n.chatID, text)

	if _, sendErr := n.bot.Send(msg); sendErr != nil {
		log.Printf("[alerts] send fail: %v", sendErr)
	}
}
