package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"homework_status_bot/internal/domain/notification"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

type mockTelegramClient struct {
	chatIDs []string
	texts   []string
	err     error
}

func (m *mockTelegramClient) SendMessage(chatID string, text string, _ *telebot.SendOptions) error {
	if m.err != nil {
		return m.err
	}
	m.chatIDs = append(m.chatIDs, chatID)
	m.texts = append(m.texts, text)
	return nil
}

type mockJournal struct {
	entries []*notification.Entry
	err     error
}

func (m *mockJournal) Append(_ context.Context, entry *notification.Entry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

func newTestNotifier(tc *mockTelegramClient, j notification.Journal) (*Notifier, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	n := NewNotifier(tc, "42", j, logrus.NewEntry(log))
	n.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return n, hook
}

func TestNotifier_Send(t *testing.T) {
	t.Run("DeliversAndJournals", func(t *testing.T) {
		tc := &mockTelegramClient{}
		journal := &mockJournal{}
		n, hook := newTestNotifier(tc, journal)

		require.NoError(t, n.Send(context.Background(), notification.KindStatus, "hello"))
		require.Equal(t, []string{"42"}, tc.chatIDs)
		require.Equal(t, []string{"hello"}, tc.texts)

		require.Len(t, journal.entries, 1)
		require.Equal(t, notification.KindStatus, journal.entries[0].Kind)
		require.Equal(t, "hello", journal.entries[0].Text)
		require.NotZero(t, journal.entries[0].ID)

		require.Equal(t, logrus.DebugLevel, hook.Entries[0].Level)
		require.Equal(t, "Bot is sending message: hello", hook.Entries[0].Message)
	})

	t.Run("RejectedSendReturnsDispatchError", func(t *testing.T) {
		tc := &mockTelegramClient{err: errors.New("telegram: bot was blocked by the user (403)")}
		journal := &mockJournal{}
		n, hook := newTestNotifier(tc, journal)

		err := n.Send(context.Background(), notification.KindError, "boom")
		var dispatchErr *DispatchError
		require.ErrorAs(t, err, &dispatchErr)
		require.Empty(t, journal.entries)
		require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	})

	t.Run("JournalFailureIsNotFatal", func(t *testing.T) {
		tc := &mockTelegramClient{}
		n, hook := newTestNotifier(tc, &mockJournal{err: errors.New("connection reset")})

		require.NoError(t, n.Send(context.Background(), notification.KindStatus, "hello"))
		require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})

	t.Run("NilJournal", func(t *testing.T) {
		tc := &mockTelegramClient{}
		n, _ := newTestNotifier(tc, nil)
		require.NoError(t, n.Send(context.Background(), notification.KindStatus, "hello"))
	})
}
