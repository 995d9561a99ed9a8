package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus is the product publish-workflow status.
type ProductStatus string

const (
	ProductStatusDraft        ProductStatus = "draft"
	ProductStatusActive       ProductStatus = "active"
	ProductStatusOutOfStock   ProductStatus = "out_of_stock"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// ProductImage is owned by a Product; at most one image is primary at
// any time.
type ProductImage struct {
	ID           uuid.UUID `json:"id"`
	URL          string    `json:"url"`
	AltText      string    `json:"alt_text,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsPrimary    bool      `json:"is_primary"`
}

// ProductSpecification is a name/value attribute owned by a Product.
type ProductSpecification struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Value string    `json:"value"`
}

// Product is the aggregate root for a vendor-listed catalog item. Its
// stock lifecycle and publish workflow are two orthogonal concerns on
// the same aggregate.
type Product struct {
	Base
	VendorID         uuid.UUID       `json:"vendor_id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	SKU              string          `json:"sku"`
	Price            Money           `json:"price"`
	StockQuantity    int             `json:"stock_quantity"`
	ReservedQuantity int             `json:"reserved_quantity"`
	Category         string          `json:"category,omitempty"`
	Status           ProductStatus   `json:"status"`
	Weight           decimal.Decimal `json:"weight"`
	Brand            string          `json:"brand,omitempty"`
	Manufacturer     string          `json:"manufacturer,omitempty"`

	Images         []ProductImage         `json:"images,omitempty"`
	Specifications []ProductSpecification `json:"specifications,omitempty"`
}

// CreateProduct builds a draft product and emits ProductCreated.
func CreateProduct(clock Clock, vendorID uuid.UUID, name, description, sku string, price Money, category string, initialStock int, weight decimal.Decimal, brand, manufacturer string) (*Product, error) {
	if vendorID == uuid.Nil {
		return nil, &ValidationError{Message: "vendor id is required"}
	}
	if isBlank(name) {
		return nil, &ValidationError{Message: "product name is required"}
	}
	if isBlank(sku) {
		return nil, &ValidationError{Message: "sku is required"}
	}
	if price.IsNegative() {
		return nil, &ValidationError{Message: "price cannot be negative"}
	}
	if initialStock < 0 {
		return nil, &ValidationError{Message: "stock quantity cannot be negative"}
	}

	product := &Product{
		Base:          NewBase(clock),
		VendorID:      vendorID,
		Name:          name,
		Description:   description,
		SKU:           strings.ToUpper(sku),
		Price:         price,
		StockQuantity: initialStock,
		Category:      category,
		Status:        ProductStatusDraft,
		Weight:        weight,
		Brand:         brand,
		Manufacturer:  manufacturer,
	}

	product.record(ProductCreated{
		ProductID: product.ID,
		VendorID:  vendorID,
		Name:      name,
		Price:     price.Amount,
		Currency:  price.Currency,
	})
	return product, nil
}

// AvailableQuantity is the stock not locked by reservations. It can
// never be negative while the reserved <= stock invariant holds.
func (p *Product) AvailableQuantity() int {
	return p.StockQuantity - p.ReservedQuantity
}

// UpdateDetails changes descriptive fields without touching the
// stock or publish state.
func (p *Product) UpdateDetails(name, description, category string, weight decimal.Decimal, brand, manufacturer string) error {
	if isBlank(name) {
		return &ValidationError{Message: "product name is required"}
	}
	p.Name = name
	p.Description = description
	p.Category = category
	p.Weight = weight
	p.Brand = brand
	p.Manufacturer = manufacturer
	p.touch()
	return nil
}

// UpdatePrice changes the price and emits ProductPriceChanged.
func (p *Product) UpdatePrice(newPrice Money) error {
	if newPrice.IsNegative() {
		return &ValidationError{Message: "price cannot be negative"}
	}

	oldPrice := p.Price
	p.Price = newPrice
	p.touch()

	p.record(ProductPriceChanged{
		ProductID: p.ID,
		OldPrice:  oldPrice.Amount,
		NewPrice:  newPrice.Amount,
		Currency:  newPrice.Currency,
	})
	return nil
}

// AddStock increases physical stock, flipping an out-of-stock product
// back to active when availability returns.
func (p *Product) AddStock(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Message: "quantity must be positive"}
	}

	oldStock := p.StockQuantity
	p.StockQuantity += quantity
	p.touch()

	if p.Status == ProductStatusOutOfStock && p.AvailableQuantity() > 0 {
		p.Status = ProductStatusActive
	}

	p.record(ProductStockUpdated{ProductID: p.ID, OldStock: oldStock, NewStock: p.StockQuantity})
	return nil
}

// RemoveStock decreases physical stock. It cannot eat into reserved
// quantity; only available stock may be removed.
func (p *Product) RemoveStock(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Message: "quantity must be positive"}
	}
	if quantity > p.AvailableQuantity() {
		return &InsufficientStockError{Requested: quantity, Available: p.AvailableQuantity()}
	}

	oldStock := p.StockQuantity
	p.StockQuantity -= quantity
	p.touch()

	if p.AvailableQuantity() == 0 && p.Status == ProductStatusActive {
		p.Status = ProductStatusOutOfStock
	}

	p.record(ProductStockUpdated{ProductID: p.ID, OldStock: oldStock, NewStock: p.StockQuantity})
	return nil
}

// ReserveStock soft-locks available stock for a pending order.
func (p *Product) ReserveStock(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Message: "quantity must be positive"}
	}
	if quantity > p.AvailableQuantity() {
		return &InsufficientStockError{Requested: quantity, Available: p.AvailableQuantity()}
	}

	p.ReservedQuantity += quantity
	p.touch()

	if p.AvailableQuantity() == 0 && p.Status == ProductStatusActive {
		p.Status = ProductStatusOutOfStock
	}
	return nil
}

// ReleaseReservedStock unlocks reserved stock, e.g. when an order is
// cancelled before fulfillment.
func (p *Product) ReleaseReservedStock(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Message: "quantity must be positive"}
	}
	if quantity > p.ReservedQuantity {
		return validationErrorf("cannot release %d items, only %d reserved", quantity, p.ReservedQuantity)
	}

	p.ReservedQuantity -= quantity
	p.touch()

	if p.Status == ProductStatusOutOfStock && p.AvailableQuantity() > 0 {
		p.Status = ProductStatusActive
	}
	return nil
}

// ConfirmReservation turns a soft lock into a hard deduction when an
// order is fulfilled.
func (p *Product) ConfirmReservation(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Message: "quantity must be positive"}
	}
	if quantity > p.ReservedQuantity {
		return validationErrorf("cannot confirm %d items, only %d reserved", quantity, p.ReservedQuantity)
	}

	p.ReservedQuantity -= quantity
	p.StockQuantity -= quantity
	p.touch()
	return nil
}

// Publish takes a draft product live. It requires a primary image and
// a positive price; the resulting status reflects availability.
func (p *Product) Publish() error {
	if p.Status != ProductStatusDraft {
		return &StateConflictError{Op: "publish product", Status: string(p.Status)}
	}
	if p.PrimaryImage() == nil {
		return &ValidationError{Message: "product must have a primary image before publishing"}
	}
	if !p.Price.Amount.IsPositive() {
		return &ValidationError{Message: "product must have a valid price before publishing"}
	}

	if p.AvailableQuantity() > 0 {
		p.Status = ProductStatusActive
	} else {
		p.Status = ProductStatusOutOfStock
	}
	p.touch()

	p.record(ProductPublished{ProductID: p.ID, PublishedAt: p.now()})
	return nil
}

// Discontinue takes the product off the catalog. Discontinuing an
// already-discontinued product is a no-op.
func (p *Product) Discontinue() {
	if p.Status == ProductStatusDiscontinued {
		return
	}
	p.Status = ProductStatusDiscontinued
	p.touch()

	p.record(ProductDiscontinued{ProductID: p.ID, DiscontinuedAt: p.now()})
}

// AddImage attaches an image. Marking it primary unsets any previously
// primary image in the same call.
func (p *Product) AddImage(url, altText string, displayOrder int, isPrimary bool) error {
	if isBlank(url) {
		return &ValidationError{Message: "image url is required"}
	}

	if isPrimary {
		for i := range p.Images {
			p.Images[i].IsPrimary = false
		}
	}

	p.Images = append(p.Images, ProductImage{
		ID:           uuid.New(),
		URL:          url,
		AltText:      altText,
		DisplayOrder: displayOrder,
		IsPrimary:    isPrimary,
	})
	p.touch()
	return nil
}

// RemoveImage detaches an image by id.
func (p *Product) RemoveImage(imageID uuid.UUID) error {
	for i := range p.Images {
		if p.Images[i].ID == imageID {
			p.Images = append(p.Images[:i], p.Images[i+1:]...)
			p.touch()
			return nil
		}
	}
	return validationErrorf("image %s not found", imageID)
}

// AddSpecification attaches a name/value attribute.
func (p *Product) AddSpecification(name, value string) error {
	if isBlank(name) {
		return &ValidationError{Message: "specification name is required"}
	}
	if isBlank(value) {
		return &ValidationError{Message: "specification value is required"}
	}

	p.Specifications = append(p.Specifications, ProductSpecification{
		ID:    uuid.New(),
		Name:  name,
		Value: value,
	})
	p.touch()
	return nil
}

// RemoveSpecification detaches a specification by id.
func (p *Product) RemoveSpecification(specificationID uuid.UUID) error {
	for i := range p.Specifications {
		if p.Specifications[i].ID == specificationID {
			p.Specifications = append(p.Specifications[:i], p.Specifications[i+1:]...)
			p.touch()
			return nil
		}
	}
	return validationErrorf("specification %s not found", specificationID)
}

// Query helpers.

func (p *Product) IsPublished() bool {
	return p.Status == ProductStatusActive || p.Status == ProductStatusOutOfStock
}

func (p *Product) IsAvailable() bool {
	return p.Status == ProductStatusActive && p.AvailableQuantity() > 0
}

func (p *Product) IsOutOfStock() bool {
	return p.AvailableQuantity() == 0
}

func (p *Product) HasSufficientStock(quantity int) bool {
	return p.AvailableQuantity() >= quantity
}

// PrimaryImage returns the primary image, or nil if none is set.
func (p *Product) PrimaryImage() *ProductImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	return nil
}
