package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
)

// CartRepository persists cart lines in the carrito_productos table.
type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

func (r *CartRepository) Add(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO carrito_productos (usuario_id, producto_id, cantidad, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, usuario_id, producto_id, cantidad, created_at`,
		item.UserID, item.ProductID, item.Quantity, item.CreatedAt,
	)
	var added domain.CartItem
	if err := row.Scan(&added.ID, &added.UserID, &added.ProductID, &added.Quantity, &added.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("insert cart item: %w", err)
	}
	return &added, nil
}

func (r *CartRepository) ListByUser(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, usuario_id, producto_id, cantidad, created_at
		FROM carrito_productos
		WHERE usuario_id = $1
		ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteOwned removes a cart line only when it belongs to userID, with the
// same single-statement contract as ProductRepository.DeleteOwned.
func (r *CartRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM carrito_productos WHERE id = $1 AND usuario_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var owner int64
	err = r.pool.QueryRow(ctx, `SELECT usuario_id FROM carrito_productos WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrCartItemNotFound
	}
	if err != nil {
		return fmt.Errorf("classify cart miss: %w", err)
	}
	return domain.ErrForbidden
}
