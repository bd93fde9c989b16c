// internal/domain/notification/journal.go
package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind tells which dedup branch produced a notification.
type Kind string

const (
	KindStatus Kind = "status"
	KindError  Kind = "error"
)

// Entry is one delivered notification.
type Entry struct {
	ID     uuid.UUID
	Kind   Kind
	ChatID string
	Text   string
	SentAt time.Time
}

// Journal is an append-only record of delivered notifications.
// It is never read back by the poller.
type Journal interface {
	Append(ctx context.Context, entry *Entry) error
}
