// internal/infra/telegram/client.go
package telegram

import (
	"gopkg.in/telebot.v3"
)

// ChatRecipient addresses a chat by its raw identifier: a numeric chat ID or
// an @channel username, both accepted by the Bot API as chat_id.
type ChatRecipient string

func (r ChatRecipient) Recipient() string { return string(r) }

// Sender is the part of *telebot.Bot used by the adapter.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot Sender
}

func NewTelebotAdapter(b Sender) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(chatID string, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	_, err := tba.bot.Send(ChatRecipient(chatID), text, options)
	return err
}
