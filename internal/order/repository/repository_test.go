package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/order/domain"
	"github.com/storekit/admin-backend/internal/pagination"
	"github.com/storekit/admin-backend/internal/storage"
	"github.com/storekit/admin-backend/internal/storage/memory"
)

func newTestRepo() *OrderRepository {
	return NewOrderRepository(memory.New())
}

func testOrderInput(status string, total float64) domain.OrderCreate {
	return domain.OrderCreate{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		ShippingAddress: "12 Analytical Way",
		Items: []domain.OrderItem{
			{ProductID: "p-1", ProductName: "Widget", Quantity: 2, Price: total / 2, Subtotal: total},
		},
		Subtotal: total,
		Total:    total,
		Status:   status,
	}
}

func TestOrderNumberFormat(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, testOrderInput(domain.StatusPending, 40))
	require.NoError(t, err)

	pattern := regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{6}$`)
	assert.Regexp(t, pattern, created.OrderNumber)
	assert.Contains(t, created.OrderNumber, time.Now().UTC().Format("20060102"))
}

func TestOrderItemsRoundTrip(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, testOrderInput(domain.StatusPending, 40))
	require.NoError(t, err)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, "Widget", fetched.Items[0].ProductName)
	assert.Equal(t, 2, fetched.Items[0].Quantity)
	assert.Equal(t, created.Items, fetched.Items)
}

func TestOrderDefaultStatusIsPending(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, testOrderInput("", 40))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)
}

func TestOrderGetByNumber(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, testOrderInput(domain.StatusPending, 40))
	require.NoError(t, err)

	fetched, err := repo.GetByNumber(ctx, created.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	_, err = repo.GetByNumber(ctx, "ORD-19700101-XXXXXX")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderStatusFilter(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, testOrderInput(domain.StatusPending, 10))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOrderInput(domain.StatusDelivered, 20))
	require.NoError(t, err)

	status := domain.StatusDelivered
	orders, _, err := repo.List(ctx, pagination.Params{Page: 1, PageSize: 20}, domain.OrderFilters{Status: &status})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.StatusDelivered, orders[0].Status)
}

func TestOrderUpdateStatus(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, testOrderInput(domain.StatusPending, 40))
	require.NoError(t, err)

	status := domain.StatusShipped
	updated, err := repo.Update(ctx, created.ID, domain.OrderUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, updated.Status)
	assert.Equal(t, created.OrderNumber, updated.OrderNumber)
	assert.Equal(t, created.Items, updated.Items)
}

func TestOrderUpdateEmptyIsNoOp(t *testing.T) {
	store := memory.New()
	repo := NewOrderRepository(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, testOrderInput(domain.StatusPending, 40))
	require.NoError(t, err)

	// Backdate the stored timestamp so a wrongful re-stamp shows up even when
	// the update runs within the same clock second as the create.
	backdated := "2023-01-02T03:04:05Z"
	require.NoError(t, store.Collection(className).Update(ctx, created.ID, storage.Properties{"updated_at": backdated}))

	updated, err := repo.Update(ctx, created.ID, domain.OrderUpdate{})
	require.NoError(t, err)
	assert.Equal(t, backdated, updated.UpdatedAt)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, backdated, fetched.UpdatedAt)
}

func TestOrderNotFound(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	_, err := repo.Get(ctx, "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	status := domain.StatusShipped
	_, err = repo.Update(ctx, "missing-id", domain.OrderUpdate{Status: &status})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.Delete(ctx, "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderStatistics(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, testOrderInput(domain.StatusPending, 10))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOrderInput(domain.StatusDelivered, 100))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOrderInput(domain.StatusDelivered, 50))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOrderInput(domain.StatusCancelled, 30))
	require.NoError(t, err)

	stats, err := repo.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 0, stats.ProcessingOrders)
	assert.Equal(t, 0, stats.ShippedOrders)
	assert.Equal(t, 2, stats.DeliveredOrders)
	assert.Equal(t, 1, stats.CancelledOrders)
	assert.Equal(t, 150.0, stats.TotalRevenue)
}
