package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
	"github.com/markobarraza/cafe-marketplace/internal/core/ports"
)

type cartService struct {
	cart  ports.CartRepository
	audit ports.AuditPublisher
	log   zerolog.Logger
}

func NewCartService(cart ports.CartRepository, audit ports.AuditPublisher, log zerolog.Logger) ports.CartService {
	return &cartService{cart: cart, audit: audit, log: log}
}

func (s *cartService) Add(ctx context.Context, actor ports.Actor, in ports.AddCartItemInput) (*domain.CartItem, error) {
	if in.ProductID <= 0 || in.Quantity < 1 {
		return nil, domain.ErrValidation
	}

	item := &domain.CartItem{
		UserID:    actor.ID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		CreatedAt: time.Now().UTC(),
	}

	added, err := s.cart.Add(ctx, item)
	if err != nil {
		return nil, err
	}

	s.publish(domain.NewAuditEvent(actor.ID, domain.AuditCartItemAdded, "cart_item", added.ID))
	return added, nil
}

func (s *cartService) List(ctx context.Context, actor ports.Actor) ([]domain.CartItem, error) {
	return s.cart.ListByUser(ctx, actor.ID)
}

// Remove deletes a cart line, conditionally on it belonging to the actor.
func (s *cartService) Remove(ctx context.Context, actor ports.Actor, id int64) error {
	if err := s.cart.DeleteOwned(ctx, id, actor.ID); err != nil {
		return err
	}

	s.publish(domain.NewAuditEvent(actor.ID, domain.AuditCartItemRemoved, "cart_item", id))
	return nil
}

func (s *cartService) publish(event domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Publish(event)
	}
}
