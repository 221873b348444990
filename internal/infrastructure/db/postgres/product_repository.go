package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
	"github.com/markobarraza/cafe-marketplace/internal/core/ports"
)

const productColumns = "id, usuario_id, nombre_producto, descripcion, imagen, precio, stock, vendido, created_at, updated_at"

// ProductRepository persists listings in the productos table.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO productos (usuario_id, nombre_producto, descripcion, imagen, precio, stock, vendido, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, false, $7, $7)
		RETURNING `+productColumns,
		product.OwnerID, product.Name, product.Description, product.ImageURL,
		product.Price, product.Stock, product.CreatedAt,
	)
	created, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return created, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM productos WHERE id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM productos ORDER BY id`)
}

func (r *ProductRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Product, error) {
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM productos WHERE usuario_id = $1 ORDER BY id`, ownerID)
}

// UpdateOwned applies the change only when the row still belongs to ownerID.
// Check and mutation are one statement, so a concurrent ownership change
// cannot slip between them.
func (r *ProductRepository) UpdateOwned(ctx context.Context, id, ownerID int64, in ports.UpdateProductInput) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE productos
		SET nombre_producto = $1, descripcion = $2, imagen = $3, precio = $4, stock = $5, vendido = $6, updated_at = now()
		WHERE id = $7 AND usuario_id = $8
		RETURNING `+productColumns,
		in.Name, in.Description, in.ImageURL, in.Price, in.Stock, in.Sold, id, ownerID,
	)
	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMiss(ctx, id)
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// DeleteOwned removes the row only when it belongs to ownerID.
func (r *ProductRepository) DeleteOwned(ctx context.Context, id, ownerID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM productos WHERE id = $1 AND usuario_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, id)
	}
	return nil
}

// classifyMiss distinguishes why a conditional mutation touched no rows:
// the listing is gone, or it belongs to someone else.
func (r *ProductRepository) classifyMiss(ctx context.Context, id int64) error {
	var owner int64
	err := r.pool.QueryRow(ctx, `SELECT usuario_id FROM productos WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("classify product miss: %w", err)
	}
	return domain.ErrForbidden
}

func (r *ProductRepository) queryProducts(ctx context.Context, sql string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ID, &product.OwnerID, &product.Name, &product.Description,
		&product.ImageURL, &product.Price, &product.Stock, &product.Sold,
		&product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
