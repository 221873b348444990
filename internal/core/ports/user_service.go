package ports

import (
	"context"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
)

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, actor Actor, id int64, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor Actor, id int64) error
}
