package ports

import (
	"context"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
)

type ProductService interface {
	Create(ctx context.Context, actor Actor, in CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Product, error)
	Update(ctx context.Context, actor Actor, id int64, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, actor Actor, id int64) error
}
