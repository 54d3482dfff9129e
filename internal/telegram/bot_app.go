package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/quynguyn1525/Translate-Bot/internal/config"
	"github.com/quynguyn1525/Translate-Bot/internal/pipeline"
)

const msgUsageHint = "Send me a voice message and I'll translate it."

type BotApp struct {
	bot      *tgbotapi.BotAPI
	pipeline *pipeline.Service
	cfg      *config.Config
}

func NewBotApp(bot *tgbotapi.BotAPI, cfg *config.Config, pipe *pipeline.Service) *BotApp {
	return &BotApp{bot: bot, pipeline: pipe, cfg: cfg}
}

// Run is the main update loop. It returns after ctx is cancelled and the
// update channel has drained.
func (app *BotApp) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := app.bot.GetUpdatesChan(u)
	log.Printf("[bot] started username=@%s", app.bot.Self.UserName)

	go func() {
		<-ctx.Done()
		app.bot.StopReceivingUpdates()
	}()

	for update := range updates {
		go app.handleUpdate(ctx, update)
	}

	log.Printf("[bot] update loop stopped")
}

func (app *BotApp) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	// a panicking update must not take the whole bot down
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[bot] panic in update handler: %v", r)
		}
	}()

	msg := update.Message
	if msg == nil {
		return
	}

	log.Printf("[bot] update id=%d chat=%d", update.UpdateID, msg.Chat.ID)

	switch {
	case msg.Voice != nil:
		app.handleVoice(ctx, msg)
	case msg.Text != "" && !msg.IsCommand():
		app.handleText(msg)
	default:
		// commands, stickers, photos: everything the bot cannot translate
		app.replyText(msg.Chat.ID, msgUsageHint)
	}
}

func (app *BotApp) replyText(chatID int64, text string) {
	if _, err := app.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("[bot] send fail chat=%d err=%v", chatID, err)
	}
}
