package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
)

// AuditRepository appends audit events. The table has no updates or deletes.
type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func (r *AuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO audit_events (id, actor_id, action, entity, entity_id, at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		event.ID, event.ActorID, event.Action, event.Entity, event.EntityID, event.At,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
