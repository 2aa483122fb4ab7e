package cart

import (
	"context"
	"testing"

	"hardware_store/internal/domain"
	"hardware_store/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore builds a cart store over a fresh in-memory backend
func newTestStore() (*Store, context.Context) {
	return NewStore(storage.NewMemoryStore()), context.Background()
}

// hammer is the product used throughout these tests
var hammer = domain.CartProduct{
	ID:          "p1",
	Name:        "Hammer",
	Description: "Steel hammer",
	Price:       100,
	Category:    "hardware-tools",
}

func TestEmptyCart(t *testing.T) {
	s, ctx := newTestStore()

	c := s.Cart(ctx)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.TotalItems)
	assert.Zero(t, c.TotalAmount)
	assert.True(t, s.Summary(ctx).IsEmpty)
}

func TestAddMergesLinesByProduct(t *testing.T) {
	s, ctx := newTestStore()

	result, _ := s.Add(ctx, hammer, 1)
	require.True(t, result.Success)
	assert.Equal(t, "Hammer added to cart", result.Message)

	// A second add of the same product increments the existing line
	_, c := s.Add(ctx, hammer, 1)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 2, c.TotalItems)
	assert.Equal(t, 200.0, c.TotalAmount)
}

func TestAddDefaultsToSingleUnit(t *testing.T) {
	s, ctx := newTestStore()

	_, c := s.Add(ctx, hammer, 0)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestTotalsAreRecomputedAfterEveryMutation(t *testing.T) {
	s, ctx := newTestStore()

	drill := domain.CartProduct{ID: "p2", Name: "Drill", Price: 2500, Category: "hardware-tools"}
	s.Add(ctx, hammer, 3)
	_, c := s.Add(ctx, drill, 2)

	checkInvariant := func(c domain.Cart) {
		t.Helper()
		items := 0
		amount := 0.0
		for _, item := range c.Items {
			items += item.Quantity
			amount += item.Price * float64(item.Quantity)
		}
		assert.Equal(t, items, c.TotalItems)
		assert.Equal(t, amount, c.TotalAmount)
	}
	checkInvariant(c)

	result, c := s.UpdateQuantity(ctx, c.Items[0].ID, 5)
	require.True(t, result.Success)
	checkInvariant(c)

	result, c = s.Remove(ctx, c.Items[1].ID)
	require.True(t, result.Success)
	checkInvariant(c)
	assert.Equal(t, 5, c.TotalItems)
	assert.Equal(t, 500.0, c.TotalAmount)
}

func TestUpdateQuantityZeroRemovesTheLine(t *testing.T) {
	s, ctx := newTestStore()

	_, c := s.Add(ctx, hammer, 2)
	itemID := c.Items[0].ID

	result, c := s.UpdateQuantity(ctx, itemID, 0)
	require.True(t, result.Success)
	assert.Equal(t, "Hammer removed from cart", result.Message)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.TotalItems)
	assert.Zero(t, c.TotalAmount)
}

func TestUpdateQuantityUnknownItem(t *testing.T) {
	s, ctx := newTestStore()

	result, _ := s.UpdateQuantity(ctx, "missing", 3)
	assert.False(t, result.Success)
	assert.Equal(t, "Item not found in cart", result.Message)
}

func TestRemoveUnknownItem(t *testing.T) {
	s, ctx := newTestStore()

	result, _ := s.Remove(ctx, "missing")
	assert.False(t, result.Success)
	assert.Equal(t, "Item not found in cart", result.Message)
}

func TestClearResetsToZeroedCart(t *testing.T) {
	s, ctx := newTestStore()

	s.Add(ctx, hammer, 4)
	result, c := s.Clear(ctx)
	require.True(t, result.Success)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.TotalItems)
	assert.Zero(t, c.TotalAmount)

	// The persisted cart matches the zeroed shape
	c = s.Cart(ctx)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.TotalItems)
}

func TestDerivedQueries(t *testing.T) {
	s, ctx := newTestStore()

	s.Add(ctx, hammer, 2)

	assert.True(t, s.IsProductInCart(ctx, "p1"))
	assert.False(t, s.IsProductInCart(ctx, "p2"))

	item := s.ItemByProductID(ctx, "p1")
	require.NotNil(t, item)
	assert.Equal(t, 2, item.Quantity)
	assert.Nil(t, s.ItemByProductID(ctx, "p2"))

	assert.Equal(t, 2, s.ItemCount(ctx))
	assert.Equal(t, 200.0, s.Total(ctx))

	summary := s.Summary(ctx)
	assert.Equal(t, 2, summary.ItemCount)
	assert.Equal(t, 200.0, summary.TotalAmount)
	assert.False(t, summary.IsEmpty)
}

func TestExportSnapshotsTheCart(t *testing.T) {
	s, ctx := newTestStore()

	s.Add(ctx, hammer, 2)
	export := s.Export(ctx)
	require.Len(t, export.Items, 1)
	assert.Equal(t, 2, export.Summary.TotalItems)
	assert.Equal(t, 200.0, export.Summary.TotalAmount)
	assert.False(t, export.Summary.ExportDate.IsZero())
}
