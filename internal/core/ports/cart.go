package ports

import (
	"context"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
)

type AddCartItemInput struct {
	ProductID int64
	Quantity  int
}

// CartRepository persists cart lines. DeleteOwned follows the same
// conditional-mutation contract as ProductRepository.DeleteOwned, with
// domain.ErrCartItemNotFound for absent ids.
type CartRepository interface {
	Add(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.CartItem, error)
	DeleteOwned(ctx context.Context, id, userID int64) error
}

type CartService interface {
	Add(ctx context.Context, actor Actor, in AddCartItemInput) (*domain.CartItem, error)
	List(ctx context.Context, actor Actor) ([]domain.CartItem, error)
	Remove(ctx context.Context, actor Actor, id int64) error
}
