// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const helpText = "I watch your homework reviews and post a message here whenever a review status changes or the poller keeps failing.\n\n" +
	"/start - Show the chat ID to put into TELEGRAM_CHAT_ID.\n" +
	"/help - Show this message."

// Handler is the subset of *telebot.Bot needed to register commands.
type Handler interface {
	Handle(endpoint interface{}, h telebot.HandlerFunc, m ...telebot.MiddlewareFunc)
}

// RegisterBotCommands wires /start and /help. Handlers are stateless and
// never touch the poller.
func RegisterBotCommands(b Handler, baseLogger *logrus.Entry) {
	commandLogger := baseLogger.WithField("handler_group", "start_help")

	b.Handle("/start", func(c telebot.Context) error {
		logCtx := commandLogger.WithField("command", "/start")
		if c.Sender() != nil {
			logCtx = logCtx.WithField("sender_id", c.Sender().ID)
		}
		logCtx.Info("Processing /start command")
		return c.Send(startText(c.Chat()))
	})

	b.Handle("/help", func(c telebot.Context) error {
		commandLogger.WithField("command", "/help").Info("Processing /help command")
		return c.Send(helpText)
	})
}

func startText(chat *telebot.Chat) string {
	if chat == nil {
		return helpText
	}
	return fmt.Sprintf("Hi! This chat ID is %s. Set TELEGRAM_CHAT_ID to it to receive review updates here.",
		strconv.FormatInt(chat.ID, 10))
}
