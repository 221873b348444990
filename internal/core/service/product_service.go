package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
	"github.com/markobarraza/cafe-marketplace/internal/core/ports"
)

type productService struct {
	products ports.ProductRepository
	audit    ports.AuditPublisher
	log      zerolog.Logger
}

func NewProductService(products ports.ProductRepository, audit ports.AuditPublisher, log zerolog.Logger) ports.ProductService {
	return &productService{products: products, audit: audit, log: log}
}

func (s *productService) Create(ctx context.Context, actor ports.Actor, in ports.CreateProductInput) (*domain.Product, error) {
	if in.Name == "" || in.Price <= 0 || in.Stock < 0 {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	product := &domain.Product{
		OwnerID:     actor.ID,
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.publish(domain.NewAuditEvent(actor.ID, domain.AuditProductCreated, "product", created.ID))
	s.log.Info().Int64("product_id", created.ID).Int64("owner_id", actor.ID).Msg("product created")
	return created, nil
}

func (s *productService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *productService) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Product, error) {
	return s.products.ListByOwner(ctx, ownerID)
}

// Update mutates a listing. The repository applies the change conditionally
// on the recorded owner, so the ownership check and the write are a single
// statement; a stale check can never let a non-owner through.
func (s *productService) Update(ctx context.Context, actor ports.Actor, id int64, in ports.UpdateProductInput) (*domain.Product, error) {
	if in.Name == "" || in.Price <= 0 || in.Stock < 0 {
		return nil, domain.ErrValidation
	}

	updated, err := s.products.UpdateOwned(ctx, id, actor.ID, in)
	if err != nil {
		return nil, err
	}

	s.publish(domain.NewAuditEvent(actor.ID, domain.AuditProductUpdated, "product", id))
	return updated, nil
}

func (s *productService) Delete(ctx context.Context, actor ports.Actor, id int64) error {
	if err := s.products.DeleteOwned(ctx, id, actor.ID); err != nil {
		return err
	}

	s.publish(domain.NewAuditEvent(actor.ID, domain.AuditProductDeleted, "product", id))
	s.log.Info().Int64("product_id", id).Int64("owner_id", actor.ID).Msg("product deleted")
	return nil
}

func (s *productService) publish(event domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Publish(event)
	}
}
