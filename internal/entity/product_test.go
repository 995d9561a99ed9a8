package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T, stock int) *Product {
	t.Helper()
	product, err := CreateProduct(
		testClock(), uuid.New(), "Mechanical Keyboard", "RGB, hot-swappable", "kb-100",
		mustMoney(t, "89.99", "USD"), "peripherals", stock,
		decimal.RequireFromString("0.9"), "KeebCo", "KeebCo Ltd",
	)
	require.NoError(t, err)
	product.DrainEvents()
	return product
}

func publishedProduct(t *testing.T, stock int) *Product {
	t.Helper()
	product := testProduct(t, stock)
	require.NoError(t, product.AddImage("https://img.example.com/kb.jpg", "keyboard", 0, true))
	require.NoError(t, product.Publish())
	product.DrainEvents()
	return product
}

func TestCreateProduct(t *testing.T) {
	product := testProduct(t, 10)

	assert.Equal(t, ProductStatusDraft, product.Status)
	assert.Equal(t, "KB-100", product.SKU)
	assert.Equal(t, 10, product.AvailableQuantity())
	assert.False(t, product.IsPublished())
}

func TestCreateProductValidation(t *testing.T) {
	price := mustMoney(t, "10", "USD")
	weight := decimal.Zero

	_, err := CreateProduct(testClock(), uuid.Nil, "x", "", "SKU", price, "", 0, weight, "", "")
	assert.True(t, IsValidation(err))

	_, err = CreateProduct(testClock(), uuid.New(), "  ", "", "SKU", price, "", 0, weight, "", "")
	assert.True(t, IsValidation(err))

	_, err = CreateProduct(testClock(), uuid.New(), "x", "", " ", price, "", 0, weight, "", "")
	assert.True(t, IsValidation(err))

	_, err = CreateProduct(testClock(), uuid.New(), "x", "", "SKU", mustMoney(t, "-1", "USD"), "", 0, weight, "", "")
	assert.True(t, IsValidation(err))

	_, err = CreateProduct(testClock(), uuid.New(), "x", "", "SKU", price, "", -1, weight, "", "")
	assert.True(t, IsValidation(err))
}

func TestReserveStockLifecycle(t *testing.T) {
	product := publishedProduct(t, 10)

	require.NoError(t, product.ReserveStock(10))
	assert.Equal(t, 0, product.AvailableQuantity())
	assert.Equal(t, ProductStatusOutOfStock, product.Status)

	err := product.ReserveStock(1)
	require.True(t, IsInsufficientStock(err))
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 1, stockErr.Requested)
	assert.Equal(t, 0, stockErr.Available)

	// Releasing restores availability and flips the status back.
	require.NoError(t, product.ReleaseReservedStock(4))
	assert.Equal(t, 4, product.AvailableQuantity())
	assert.Equal(t, ProductStatusActive, product.Status)

	assert.True(t, IsValidation(product.ReleaseReservedStock(100)))
}

func TestConfirmReservation(t *testing.T) {
	product := publishedProduct(t, 10)
	require.NoError(t, product.ReserveStock(3))

	require.NoError(t, product.ConfirmReservation(3))
	assert.Equal(t, 7, product.StockQuantity)
	assert.Equal(t, 0, product.ReservedQuantity)
	assert.Equal(t, 7, product.AvailableQuantity())

	assert.True(t, IsValidation(product.ConfirmReservation(1)))
}

func TestAddAndRemoveStock(t *testing.T) {
	product := publishedProduct(t, 5)

	require.NoError(t, product.RemoveStock(5))
	assert.Equal(t, ProductStatusOutOfStock, product.Status)
	assert.True(t, IsInsufficientStock(product.RemoveStock(1)))

	require.NoError(t, product.AddStock(2))
	assert.Equal(t, ProductStatusActive, product.Status)
	assert.Equal(t, 2, product.AvailableQuantity())

	assert.True(t, IsValidation(product.AddStock(0)))
	assert.True(t, IsValidation(product.RemoveStock(-1)))
}

func TestRemoveStockCannotEatReserved(t *testing.T) {
	product := publishedProduct(t, 10)
	require.NoError(t, product.ReserveStock(8))

	// Only 2 are available even though 10 are physically in stock.
	assert.True(t, IsInsufficientStock(product.RemoveStock(3)))
	require.NoError(t, product.RemoveStock(2))
	assert.Equal(t, 8, product.StockQuantity)
}

func TestPublishRules(t *testing.T) {
	product := testProduct(t, 5)

	// No primary image yet.
	assert.True(t, IsValidation(product.Publish()))

	require.NoError(t, product.AddImage("https://img.example.com/kb.jpg", "", 0, true))
	require.NoError(t, product.Publish())
	assert.Equal(t, ProductStatusActive, product.Status)

	// Publishing twice is a state conflict.
	assert.True(t, IsStateConflict(product.Publish()))

	events := product.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "ProductPublished", events[0].EventType())
}

func TestPublishWithoutStockGoesOutOfStock(t *testing.T) {
	product := testProduct(t, 0)
	require.NoError(t, product.AddImage("https://img.example.com/kb.jpg", "", 0, true))

	require.NoError(t, product.Publish())
	assert.Equal(t, ProductStatusOutOfStock, product.Status)
}

func TestPublishRequiresPositivePrice(t *testing.T) {
	product := testProduct(t, 5)
	require.NoError(t, product.AddImage("https://img.example.com/kb.jpg", "", 0, true))
	require.NoError(t, product.UpdatePrice(ZeroMoney("USD")))

	assert.True(t, IsValidation(product.Publish()))
}

func TestDiscontinueIsIdempotent(t *testing.T) {
	product := publishedProduct(t, 5)

	product.Discontinue()
	assert.Equal(t, ProductStatusDiscontinued, product.Status)
	require.Len(t, product.DrainEvents(), 1)

	// Second call is a silent no-op with no event.
	product.Discontinue()
	assert.Empty(t, product.PendingEvents())
}

func TestUpdatePriceEmitsEvent(t *testing.T) {
	product := testProduct(t, 1)

	require.NoError(t, product.UpdatePrice(mustMoney(t, "79.99", "USD")))
	events := product.DrainEvents()
	require.Len(t, events, 1)

	changed, ok := events[0].(ProductPriceChanged)
	require.True(t, ok)
	assert.True(t, changed.OldPrice.Equal(decimal.RequireFromString("89.99")))
	assert.True(t, changed.NewPrice.Equal(decimal.RequireFromString("79.99")))

	assert.True(t, IsValidation(product.UpdatePrice(mustMoney(t, "-1", "USD"))))
}

func TestPrimaryImageExclusivity(t *testing.T) {
	product := testProduct(t, 1)

	require.NoError(t, product.AddImage("https://img.example.com/1.jpg", "", 0, true))
	require.NoError(t, product.AddImage("https://img.example.com/2.jpg", "", 1, true))

	primary := product.PrimaryImage()
	require.NotNil(t, primary)
	assert.Equal(t, "https://img.example.com/2.jpg", primary.URL)

	count := 0
	for _, img := range product.Images {
		if img.IsPrimary {
			count++
		}
	}
	assert.Equal(t, 1, count)

	require.NoError(t, product.RemoveImage(primary.ID))
	assert.Nil(t, product.PrimaryImage())
	assert.True(t, IsValidation(product.RemoveImage(uuid.New())))
}

func TestSpecifications(t *testing.T) {
	product := testProduct(t, 1)

	require.NoError(t, product.AddSpecification("switch type", "tactile"))
	assert.True(t, IsValidation(product.AddSpecification(" ", "x")))
	assert.True(t, IsValidation(product.AddSpecification("x", " ")))

	require.Len(t, product.Specifications, 1)
	require.NoError(t, product.RemoveSpecification(product.Specifications[0].ID))
	assert.Empty(t, product.Specifications)
	assert.True(t, IsValidation(product.RemoveSpecification(uuid.New())))
}
