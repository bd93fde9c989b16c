// internal/app/notifier.go
package app

import (
	"context"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/notification"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DispatchError means the messaging channel rejected a message.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("bot failed to send message: %v", e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// Notifier delivers messages to the single configured chat.
type Notifier struct {
	telegramClient domainTelegram.Client
	chatID         string
	journal        notification.Journal // may be nil
	logger         *logrus.Entry
	now            func() time.Time
}

func NewNotifier(tc domainTelegram.Client, chatID string, journal notification.Journal, logger *logrus.Entry) *Notifier {
	return &Notifier{
		telegramClient: tc,
		chatID:         chatID,
		journal:        journal,
		logger:         logger,
		now:            time.Now,
	}
}

// Send dispatches text and, on success, appends it to the journal.
// A journal failure is logged and does not fail the send.
func (n *Notifier) Send(ctx context.Context, kind notification.Kind, text string) error {
	logCtx := n.logger.WithFields(logrus.Fields{"chat_id": n.chatID, "kind": kind})
	logCtx.Debugf("Bot is sending message: %s", text)

	if err := n.telegramClient.SendMessage(n.chatID, text, nil); err != nil {
		dispatchErr := &DispatchError{Err: err}
		logCtx.WithError(err).Error(dispatchErr.Error())
		return dispatchErr
	}

	if n.journal == nil {
		return nil
	}
	entry := &notification.Entry{
		ID:     uuid.New(),
		Kind:   kind,
		ChatID: n.chatID,
		Text:   text,
		SentAt: n.now().UTC(),
	}
	if err := n.journal.Append(ctx, entry); err != nil {
		logCtx.WithError(err).Warn("Failed to append notification to journal")
	}
	return nil
}
