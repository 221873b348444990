package ports

import (
	"context"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
)

// CreateProductInput carries the listing fields supplied by the seller. The
// owner is taken from the authenticated actor, never from the payload.
type CreateProductInput struct {
	Name        string
	Description string
	ImageURL    string
	Price       float64
	Stock       int
}

// UpdateProductInput mirrors CreateProductInput plus the sold flag.
type UpdateProductInput struct {
	Name        string
	Description string
	ImageURL    string
	Price       float64
	Stock       int
	Sold        bool
}

// ProductRepository defines catalog persistence. The Owned mutations are
// conditional on the recorded owner so that the ownership check and the write
// happen as one statement, leaving no window between check and act:
//   - domain.ErrProductNotFound when the id does not exist
//   - domain.ErrForbidden when it exists but belongs to someone else
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Product, error)
	UpdateOwned(ctx context.Context, id, ownerID int64, in UpdateProductInput) (*domain.Product, error)
	DeleteOwned(ctx context.Context, id, ownerID int64) error
}
