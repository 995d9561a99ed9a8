package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"marketplace-backend/internal/entity"
	"marketplace-backend/internal/messaging"
	"marketplace-backend/internal/repository"
)

// CreateProductCommand carries everything needed to list a new product.
type CreateProductCommand struct {
	VendorID     uuid.UUID
	Name         string
	Description  string
	SKU          string
	Price        entity.Money
	Category     string
	InitialStock int
	Weight       decimal.Decimal
	Brand        string
	Manufacturer string
}

// ProductService orchestrates the product catalog and stock lifecycle.
type ProductService struct {
	products  repository.ProductRepository
	publisher messaging.Publisher
	clock     entity.Clock
}

func NewProductService(products repository.ProductRepository, publisher messaging.Publisher, clock entity.Clock) *ProductService {
	return &ProductService{products: products, publisher: publisher, clock: clock}
}

// CreateProduct registers a new draft product and publishes ProductCreated.
func (s *ProductService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (*entity.Product, error) {
	slog.Info("Service: Creating product", "vendor_id", cmd.VendorID, "sku", cmd.SKU)

	product, err := entity.CreateProduct(s.clock, cmd.VendorID, cmd.Name, cmd.Description, cmd.SKU, cmd.Price, cmd.Category, cmd.InitialStock, cmd.Weight, cmd.Brand, cmd.Manufacturer)
	if err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	publishEvents(ctx, s.publisher, product.ID.String(), product)
	return product, nil
}

// GetProduct loads a product by id.
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return s.products.Load(ctx, id)
}

func (s *ProductService) mutate(ctx context.Context, id uuid.UUID, fn func(*entity.Product) error) (*entity.Product, error) {
	product, err := s.products.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	product.SetClock(s.clock)

	if err := fn(product); err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	publishEvents(ctx, s.publisher, product.ID.String(), product)
	return product, nil
}

func (s *ProductService) UpdateDetails(ctx context.Context, productID uuid.UUID, name, description, category string, weight decimal.Decimal, brand, manufacturer string) (*entity.Product, error) {
	return s.mutate(ctx, productID, func(p *entity.Product) error {
		return p.UpdateDetails(name, description, category, weight, brand, manufacturer)
	})
}

func (s *ProductService) UpdatePrice(ctx context.Context, productID uuid.UUID, price entity.Money) (*entity.Product, error) {
	return s.mutate(ctx, productID, func(p *entity.Product) error {
		return p.UpdatePrice(price)
	})
}

func (s *ProductService) AddStock(ctx context.Context, productID uuid.UUID, quantity int) (*entity.Product, error) {
	return s.mutate(ctx, productID, func(p *entity.Product) error {
		return p.AddStock(quantity)
	})
}

func (s *ProductService) RemoveStock(ctx context.Context, productID uuid.UUID, quantity int) (*entity.Product, error) {
	return s.mutate(ctx, productID, func(p *entity.Product) error {
		return p.RemoveStock(quantity)
	})
}

func (s *ProductService) ReserveStock(ctx context.Context, productID uuid.UUID, quantity int) (*entity.Product, error) {
	return s.mutate(ctx, productID, func(p *entity.Product) error {
		return p.ReserveStock(quantity)
	})
}

func (s *ProductService) ReleaseReservedStock(ctx context.Context, productID uuid.UUID, quantity int) (*entity.Product, error) {
	return s.mutate(ctx, productID, func(p *entity.Product) error {
		return p.ReleaseReservedStock(quantity)
	})
}

func (s *ProductService) ConfirmReservation(ctx context.Context, productID uuid.UUID, quantity int) (*entity.Product, error) {
	return s.mutate(ctx, productID, func(p *entity.Product) error {
		return p.ConfirmReservation(quantity)
	})
}

func (s *ProductService) PublishProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	return s.mutate(ctx, productID, func(p *entity.Product) error {
		return p.Publish()
	})
}

func (s *ProductService) DiscontinueProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	return s.mutate(ctx, productID, func(p *entity.Product) error {
		p.Discontinue()
		return nil
	})
}

func (s *ProductService) AddImage(ctx context.Context, productID uuid.UUID, url, altText string, displayOrder int, isPrimary bool) (*entity.Product, error) {
	return s.mutate(ctx, productID, func(p *entity.Product) error {
		return p.AddImage(url, altText, displayOrder, isPrimary)
	})
}

func (s *ProductService) RemoveImage(ctx context.Context, productID, imageID uuid.UUID) (*entity.Product, error) {
	return s.mutate(ctx, productID, func(p *entity.Product) error {
		return p.RemoveImage(imageID)
	})
}

func (s *ProductService) AddSpecification(ctx context.Context, productID uuid.UUID, name, value string) (*entity.Product, error) {
	return s.mutate(ctx, productID, func(p *entity.Product) error {
		return p.AddSpecification(name, value)
	})
}

func (s *ProductService) RemoveSpecification(ctx context.Context, productID, specificationID uuid.UUID) (*entity.Product, error) {
	return s.mutate(ctx, productID, func(p *entity.Product) error {
		return p.RemoveSpecification(specificationID)
	})
}
