package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
	"github.com/markobarraza/cafe-marketplace/internal/core/ports"
)

type stubCartRepo struct {
	nextID int64
	items  map[int64]*domain.CartItem
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{nextID: 1, items: make(map[int64]*domain.CartItem)}
}

func (r *stubCartRepo) Add(_ context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	stored := *item
	stored.ID = r.nextID
	r.nextID++
	r.items[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *stubCartRepo) ListByUser(_ context.Context, userID int64) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubCartRepo) DeleteOwned(_ context.Context, id, userID int64) error {
	item, ok := r.items[id]
	if !ok {
		return domain.ErrCartItemNotFound
	}
	if item.UserID != userID {
		return domain.ErrForbidden
	}
	delete(r.items, id)
	return nil
}

func TestCartService_AddAndList(t *testing.T) {
	svc := NewCartService(newStubCartRepo(), nil, zerolog.Nop())
	buyer := ports.Actor{ID: 7, Role: domain.RoleBuyer}

	added, err := svc.Add(context.Background(), buyer, ports.AddCartItemInput{ProductID: 3, Quantity: 2})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if added.UserID != buyer.ID {
		t.Fatalf("expected cart owner %d, got %d", buyer.ID, added.UserID)
	}

	items, err := svc.List(context.Background(), buyer)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != 3 || items[0].Quantity != 2 {
		t.Fatalf("unexpected cart contents: %+v", items)
	}
}

func TestCartService_Add_RejectsBadQuantity(t *testing.T) {
	svc := NewCartService(newStubCartRepo(), nil, zerolog.Nop())
	buyer := ports.Actor{ID: 7, Role: domain.RoleBuyer}

	if _, err := svc.Add(context.Background(), buyer, ports.AddCartItemInput{ProductID: 3, Quantity: 0}); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCartService_Remove_ForbiddenForOtherUser(t *testing.T) {
	svc := NewCartService(newStubCartRepo(), nil, zerolog.Nop())
	buyer := ports.Actor{ID: 7, Role: domain.RoleBuyer}
	intruder := ports.Actor{ID: 8, Role: domain.RoleBuyer}

	added, err := svc.Add(context.Background(), buyer, ports.AddCartItemInput{ProductID: 3, Quantity: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.Remove(context.Background(), intruder, added.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Remove(context.Background(), buyer, added.ID); err != nil {
		t.Fatalf("owner removal failed: %v", err)
	}
	if err := svc.Remove(context.Background(), buyer, added.ID); err != domain.ErrCartItemNotFound {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}
