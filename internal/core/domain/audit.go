package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded for account and catalog mutations.
const (
	AuditUserRegistered = "user.registered"
	AuditUserUpdated    = "user.updated"
	AuditUserDeleted    = "user.deleted"
	AuditLoginSucceeded = "login.succeeded"
	AuditProductCreated = "product.created"
	AuditProductUpdated = "product.updated"
	AuditProductDeleted = "product.deleted"
	AuditCartItemAdded   = "cart.item_added"
	AuditCartItemRemoved = "cart.item_removed"
)

// AuditEvent is an append-only record of a mutation performed by an actor.
// Events are recorded asynchronously; a lost event never fails the request
// that produced it.
type AuditEvent struct {
	ID       uuid.UUID `json:"id"`
	ActorID  int64     `json:"actor_id"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID int64     `json:"entity_id"`
	At       time.Time `json:"at"`
}

// NewAuditEvent stamps a fresh event with an id and timestamp.
func NewAuditEvent(actorID int64, action, entity string, entityID int64) AuditEvent {
	return AuditEvent{
		ID:       uuid.New(),
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		At:       time.Now().UTC(),
	}
}
