package repository

import (
	"context"
	"encoding/json"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/derive"
	"github.com/storekit/admin-backend/internal/order/domain"
	"github.com/storekit/admin-backend/internal/pagination"
	"github.com/storekit/admin-backend/internal/storage"
)

const className = "Order"

// Lookup by order number scans linearly; statistics scan "everything" for
// realistic volumes. Both bounds come from the existing API contract.
const (
	numberScanLimit     = 100
	statisticsScanLimit = 10000
)

// OrderRepository maps orders onto the store's flat property schema. Line
// items are persisted as one JSON string property (items_json).
type OrderRepository struct {
	col storage.Collection
}

// NewOrderRepository creates a repository over the given store handle.
func NewOrderRepository(store storage.Store) *OrderRepository {
	return &OrderRepository{col: store.Collection(className)}
}

// Create inserts a new order. The order number is generated here, once, and
// not checked for uniqueness; collisions are probabilistically negligible
// within a day.
func (r *OrderRepository) Create(ctx context.Context, input domain.OrderCreate) (*domain.Order, error) {
	items := input.Items
	if items == nil {
		items = []domain.OrderItem{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, apperrors.Database("encode order items", err)
	}

	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}

	now := derive.Timestamp()
	props := storage.Properties{
		"order_number":     derive.OrderNumber(),
		"customer_name":    input.CustomerName,
		"customer_email":   input.CustomerEmail,
		"customer_phone":   input.CustomerPhone,
		"shipping_address": input.ShippingAddress,
		"billing_address":  input.BillingAddress,
		"items_json":       string(itemsJSON),
		"subtotal":         input.Subtotal,
		"tax":              input.Tax,
		"shipping_cost":    input.ShippingCost,
		"total":            input.Total,
		"status":           status,
		"notes":            input.Notes,
		"created_at":       now,
		"updated_at":       now,
	}

	id, err := r.col.Insert(ctx, props)
	if err != nil {
		return nil, apperrors.Database("create order", err)
	}
	return decodeOrder(storage.Object{ID: id, Properties: props})
}

// Get fetches an order by id.
func (r *OrderRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	obj, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database("fetch order", err)
	}
	if obj == nil {
		return nil, apperrors.NotFoundID("Order", id)
	}
	return decodeOrder(*obj)
}

// GetByNumber fetches an order by its display number with a bounded linear
// scan. The number is not indexed in the store.
func (r *OrderRepository) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	objects, err := r.col.Scan(ctx, numberScanLimit, 0)
	if err != nil {
		return nil, apperrors.Database("fetch order by number", err)
	}

	for _, obj := range objects {
		if obj.Properties.String("order_number") == orderNumber {
			return decodeOrder(obj)
		}
	}
	return nil, apperrors.NotFound("Order with number " + orderNumber + " not found")
}

// List scans one page window, then filters in memory.
func (r *OrderRepository) List(ctx context.Context, params pagination.Params, filters domain.OrderFilters) ([]domain.Order, int, error) {
	objects, err := r.col.Scan(ctx, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, apperrors.Database("list orders", err)
	}

	orders := make([]domain.Order, 0, len(objects))
	for _, obj := range objects {
		order, err := decodeOrder(obj)
		if err != nil {
			return nil, 0, err
		}
		if !filters.Match(*order) {
			continue
		}
		orders = append(orders, *order)
	}

	total := pagination.EstimateTotal(params, len(objects), len(orders))
	return orders, total, nil
}

// Update merges the supplied fields into the order. An update with no set
// fields returns the current record without touching updated_at.
func (r *OrderRepository) Update(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error) {
	existing, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database("fetch order", err)
	}
	if existing == nil {
		return nil, apperrors.NotFoundID("Order", id)
	}

	if update.IsEmpty() {
		return decodeOrder(*existing)
	}

	partial := storage.Properties{}
	if update.Status != nil {
		partial["status"] = *update.Status
	}
	if update.Notes != nil {
		partial["notes"] = *update.Notes
	}
	if update.ShippingAddress != nil {
		partial["shipping_address"] = *update.ShippingAddress
	}
	if update.BillingAddress != nil {
		partial["billing_address"] = *update.BillingAddress
	}
	partial["updated_at"] = derive.Timestamp()

	if err := r.col.Update(ctx, id, partial); err != nil {
		return nil, apperrors.Database("update order", err)
	}

	updated, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database("fetch order", err)
	}
	if updated == nil {
		return nil, apperrors.NotFoundID("Order", id)
	}
	return decodeOrder(*updated)
}

// Delete removes the order. Hard delete.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	existing, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return apperrors.Database("fetch order", err)
	}
	if existing == nil {
		return apperrors.NotFoundID("Order", id)
	}

	if err := r.col.Delete(ctx, id); err != nil {
		return apperrors.Database("delete order", err)
	}
	return nil
}

// Statistics tallies counts per status over a full scan and sums revenue
// over delivered orders only. Linear in order count, recomputed per call.
func (r *OrderRepository) Statistics(ctx context.Context) (*domain.OrderStatistics, error) {
	objects, err := r.col.Scan(ctx, statisticsScanLimit, 0)
	if err != nil {
		return nil, apperrors.Database("order statistics", err)
	}

	stats := &domain.OrderStatistics{}
	for _, obj := range objects {
		stats.TotalOrders++
		switch obj.Properties.String("status") {
		case domain.StatusPending:
			stats.PendingOrders++
		case domain.StatusProcessing:
			stats.ProcessingOrders++
		case domain.StatusShipped:
			stats.ShippedOrders++
		case domain.StatusDelivered:
			stats.DeliveredOrders++
			stats.TotalRevenue += obj.Properties.Float("total")
		case domain.StatusCancelled:
			stats.CancelledOrders++
		}
	}
	return stats, nil
}

func decodeOrder(obj storage.Object) (*domain.Order, error) {
	p := obj.Properties

	items := []domain.OrderItem{}
	if raw := p.String("items_json"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, apperrors.Database("decode order",
				apperrors.CorruptRecord("order "+obj.ID+" has malformed items_json"))
		}
	}

	return &domain.Order{
		ID:              obj.ID,
		OrderNumber:     p.String("order_number"),
		CustomerName:    p.String("customer_name"),
		CustomerEmail:   p.String("customer_email"),
		CustomerPhone:   p.String("customer_phone"),
		ShippingAddress: p.String("shipping_address"),
		BillingAddress:  p.String("billing_address"),
		Items:           items,
		Subtotal:        p.Float("subtotal"),
		Tax:             p.Float("tax"),
		ShippingCost:    p.Float("shipping_cost"),
		Total:           p.Float("total"),
		Status:          p.String("status"),
		Notes:           p.String("notes"),
		CreatedAt:       p.String("created_at"),
		UpdatedAt:       p.String("updated_at"),
	}, nil
}
