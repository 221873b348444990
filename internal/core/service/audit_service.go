package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
	"github.com/markobarraza/cafe-marketplace/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns the recorder that runs on the worker side of the
// audit pipeline. A nil repo degrades to log-only recording.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditRecorder {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, event domain.AuditEvent) error {
	s.log.Debug().
		Str("event_id", event.ID.String()).
		Int64("actor_id", event.ActorID).
		Str("action", event.Action).
		Int64("entity_id", event.EntityID).
		Msg("audit event")

	if s.repo == nil {
		return nil
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	return nil
}
