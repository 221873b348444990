package ports

import (
	"context"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
)

// AuditPublisher hands an event to the async pipeline. Publishing never
// blocks the request path beyond channel buffering and never returns an
// error; delivery is best effort.
type AuditPublisher interface {
	Publish(event domain.AuditEvent)
}

// AuditRecorder consumes events on the worker side of the pipeline.
type AuditRecorder interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditRepository is the append-only store behind the recorder.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}
