// internal/audit/audit.go
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Logger records moderation and lifecycle actions on posts. Logging is
// best effort at the call sites, so implementations should not block
// the request path longer than a single insert.
type Logger interface {
	LogPostCreate(ctx context.Context, actorID, postID uuid.UUID, status string) error
	LogStatusChange(ctx context.Context, actorID, postID uuid.UUID, from, to string) error
	LogPostDelete(ctx context.Context, actorID, postID uuid.UUID, withAttachments bool) error
}

// NoOpLogger discards all audit events. Used when no audit database
// is configured and in tests.
type NoOpLogger struct{}

func (NoOpLogger) LogPostCreate(context.Context, uuid.UUID, uuid.UUID, string) error {
	return nil
}

func (NoOpLogger) LogStatusChange(context.Context, uuid.UUID, uuid.UUID, string, string) error {
	return nil
}

func (NoOpLogger) LogPostDelete(context.Context, uuid.UUID, uuid.UUID, bool) error {
	return nil
}

// PostAuditLogger writes audit events to a dedicated Postgres pool,
// kept separate from the primary connection so audit volume never
// starves request traffic.
type PostAuditLogger struct {
	pool *pgxpool.Pool
}

func NewPostAuditLogger(pool *pgxpool.Pool) *PostAuditLogger {
	return &PostAuditLogger{pool: pool}
}

// EnsureSchema creates the audit table if it does not exist yet.
func (l *PostAuditLogger) EnsureSchema(ctx context.Context) error {
	_, err := l.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS post_audit_logs (
			id BIGSERIAL PRIMARY KEY,
			action_type TEXT NOT NULL,
			actor_id UUID NOT NULL,
			post_id UUID NOT NULL,
			detail JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("creating audit table: %w", err)
	}
	return nil
}

func (l *PostAuditLogger) LogPostCreate(ctx context.Context, actorID, postID uuid.UUID, status string) error {
	return l.insert(ctx, "post_create", actorID, postID, map[string]interface{}{
		"status": status,
	})
}

func (l *PostAuditLogger) LogStatusChange(ctx context.Context, actorID, postID uuid.UUID, from, to string) error {
	return l.insert(ctx, "status_change", actorID, postID, map[string]interface{}{
		"from": from,
		"to":   to,
	})
}

func (l *PostAuditLogger) LogPostDelete(ctx context.Context, actorID, postID uuid.UUID, withAttachments bool) error {
	return l.insert(ctx, "post_delete", actorID, postID, map[string]interface{}{
		"with_attachments": withAttachments,
	})
}

func (l *PostAuditLogger) insert(ctx context.Context, action string, actorID, postID uuid.UUID, detail map[string]interface{}) error {
	detailJSON, err := json.Marshal(detail)
	if err != nil {
		slog.WarnContext(ctx, "failed to marshal audit detail", "error", err)
		detailJSON = []byte("{}")
	}

	_, err = l.pool.Exec(ctx, `
		INSERT INTO post_audit_logs (action_type, actor_id, post_id, detail)
		VALUES ($1, $2, $3, $4)
	`, action, actorID, postID, detailJSON)
	if err != nil {
		return fmt.Errorf("inserting audit log: %w", err)
	}
	return nil
}
