package mailer

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"cardpress/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// Message statuses.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Message is one queued delivery.
type Message struct {
	ID          int64
	Recipient   string
	Subject     string
	Body        string
	Attachment  string
	Status      string
	Attempts    int
	LastError   string
	NextAttempt time.Time
}

// OutboxStore persists queued mail in SQLite under the log directory.
type OutboxStore struct {
	db   *sql.DB
	path string
}

// OpenOutbox initializes or connects to the outbox database.
func OpenOutbox(cfg *config.Config) (*OutboxStore, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.LogDir, "outbox.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create outbox schema: %w", err)
	}

	return &OutboxStore{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *OutboxStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Enqueue inserts a pending message due immediately.
func (s *OutboxStore) Enqueue(ctx context.Context, to, subject, body, attachment string) (*Message, error) {
	now := time.Now().UTC()
	stamp := now.Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO outbox_messages (
            recipient, subject, body, attachment, status, next_attempt, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		to, subject, body, attachment, StatusPending, stamp, stamp, stamp)
	if err != nil {
		return nil, fmt.Errorf("enqueue message: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("enqueue message id: %w", err)
	}
	return &Message{
		ID:          id,
		Recipient:   to,
		Subject:     subject,
		Body:        body,
		Attachment:  attachment,
		Status:      StatusPending,
		NextAttempt: now,
	}, nil
}

// Due returns up to limit pending messages whose next attempt is not in the
// future, oldest first.
func (s *OutboxStore) Due(ctx context.Context, now time.Time, limit int) ([]*Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, recipient, subject, body, attachment, status, attempts,
                COALESCE(last_error, ''), next_attempt
           FROM outbox_messages
          WHERE status = ? AND next_attempt <= ?
          ORDER BY id
          LIMIT ?`,
		StatusPending, now.UTC().Format(time.RFC3339Nano), limit)
	if err != nil {
		return nil, fmt.Errorf("query due messages: %w", err)
	}
	defer rows.Close()

	var due []*Message
	for rows.Next() {
		var msg Message
		var next string
		if err := rows.Scan(&msg.ID, &msg.Recipient, &msg.Subject, &msg.Body,
			&msg.Attachment, &msg.Status, &msg.Attempts, &msg.LastError, &next); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, next); parseErr == nil {
			msg.NextAttempt = parsed
		}
		due = append(due, &msg)
	}
	return due, rows.Err()
}

// MarkSent records a successful delivery.
func (s *OutboxStore) MarkSent(ctx context.Context, id int64) error {
	return s.update(ctx,
		`UPDATE outbox_messages SET status = ?, updated_at = ? WHERE id = ?`,
		StatusSent, nowStamp(), id)
}

// MarkFailed records a delivery failure, rescheduling with the given next
// attempt or marking the message failed when final is true.
func (s *OutboxStore) MarkFailed(ctx context.Context, id int64, sendErr error, next time.Time, final bool) error {
	status := StatusPending
	if final {
		status = StatusFailed
	}
	detail := ""
	if sendErr != nil {
		detail = sendErr.Error()
	}
	return s.update(ctx,
		`UPDATE outbox_messages
            SET status = ?, attempts = attempts + 1, last_error = ?,
                next_attempt = ?, updated_at = ?
          WHERE id = ?`,
		status, detail, next.UTC().Format(time.RFC3339Nano), nowStamp(), id)
}

// PendingCount reports the number of undelivered messages.
func (s *OutboxStore) PendingCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM outbox_messages WHERE status = ?`, StatusPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending: %w", err)
	}
	return count, nil
}

func (s *OutboxStore) update(ctx context.Context, query string, args ...any) error {
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update outbox: %w", err)
	}
	return nil
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// outboxSink enqueues instead of sending; the worker handles delivery.
type outboxSink struct {
	store *OutboxStore
}

// NewOutboxSink wraps an outbox store in the Sink contract.
func NewOutboxSink(store *OutboxStore) Sink {
	return outboxSink{store: store}
}

func (o outboxSink) Send(ctx context.Context, to, subject, bodyText, attachmentPath string) error {
	_, err := o.store.Enqueue(ctx, to, subject, bodyText, attachmentPath)
	return err
}
