// internal/infra/database/postgres_journal_repository.go
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var ErrDuplicateJournalEntry = errors.New("duplicate notification journal entry")

const uniqueViolation = pq.ErrorCode("23505")

type PostgresJournalRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewPostgresJournalRepository(db *sql.DB) *PostgresJournalRepository {
	return &PostgresJournalRepository{db: db, now: time.Now}
}

// Append inserts the entry, filling ID and SentAt when they are unset.
func (r *PostgresJournalRepository) Append(ctx context.Context, entry *notification.Entry) error {
	fillJournalDefaults(entry, r.now)

	query := `INSERT INTO notification_journal (id, kind, chat_id, text, sent_at)
               VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, entry.ID, entry.Kind, entry.ChatID, entry.Text, entry.SentAt)
	return appendError(err)
}

func fillJournalDefaults(entry *notification.Entry, now func() time.Time) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.SentAt.IsZero() {
		entry.SentAt = now().UTC()
	}
}

func appendError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateJournalEntry
	}
	return fmt.Errorf("error appending notification journal entry: %w", err)
}
