package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
)

type collectingRecorder struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	done   chan struct{}
	want   int
}

func (r *collectingRecorder) Record(_ context.Context, event domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	if len(r.events) == r.want {
		close(r.done)
	}
	return nil
}

func TestDispatcher_DeliversInActorOrder(t *testing.T) {
	recorder := &collectingRecorder{done: make(chan struct{}), want: 3}
	d := NewDispatcher(2, recorder, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Publish(domain.NewAuditEvent(7, domain.AuditProductCreated, "product", 1))
	d.Publish(domain.NewAuditEvent(7, domain.AuditProductUpdated, "product", 1))
	d.Publish(domain.NewAuditEvent(7, domain.AuditProductDeleted, "product", 1))

	select {
	case <-recorder.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events")
	}

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	wantOrder := []string{domain.AuditProductCreated, domain.AuditProductUpdated, domain.AuditProductDeleted}
	for i, event := range recorder.events {
		if event.Action != wantOrder[i] {
			t.Fatalf("event %d: expected %s, got %s", i, wantOrder[i], event.Action)
		}
	}
}
