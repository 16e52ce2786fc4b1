package domain

import (
	"context"

	"github.com/storekit/admin-backend/internal/pagination"
)

// Order statuses. Transitions are unconstrained; any status may follow any
// other.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is one line of an order. Items are persisted as a single JSON
// string property (items_json).
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

// Order is a customer purchase. OrderNumber is a system-generated display
// identifier distinct from the internal key.
type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"order_number"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	ShippingAddress string      `json:"shipping_address"`
	BillingAddress  string      `json:"billing_address,omitempty"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	Tax             float64     `json:"tax"`
	ShippingCost    float64     `json:"shipping_cost"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at"`
}

// OrderCreate carries the caller-validated fields for creation. The order
// number is assigned by the repository, never by the caller.
type OrderCreate struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	BillingAddress  string
	Items           []OrderItem
	Subtotal        float64
	Tax             float64
	ShippingCost    float64
	Total           float64
	Status          string
	Notes           string
}

// OrderUpdate is a partial update. Only status, notes and addresses are
// mutable after creation.
type OrderUpdate struct {
	Status          *string
	Notes           *string
	ShippingAddress *string
	BillingAddress  *string
}

// IsEmpty reports whether the update carries no set fields.
func (u OrderUpdate) IsEmpty() bool {
	return u.Status == nil && u.Notes == nil && u.ShippingAddress == nil &&
		u.BillingAddress == nil
}

// OrderFilters are the listing predicates, applied in memory after the scan
// window.
type OrderFilters struct {
	Status        *string
	CustomerEmail *string
}

// Match reports whether the order satisfies every supplied predicate.
func (f OrderFilters) Match(o Order) bool {
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	if f.CustomerEmail != nil && o.CustomerEmail != *f.CustomerEmail {
		return false
	}
	return true
}

// OrderStatistics is a derived aggregate, never persisted. Revenue counts
// delivered orders only.
type OrderStatistics struct {
	TotalOrders      int     `json:"total_orders"`
	PendingOrders    int     `json:"pending_orders"`
	ProcessingOrders int     `json:"processing_orders"`
	ShippedOrders    int     `json:"shipped_orders"`
	DeliveredOrders  int     `json:"delivered_orders"`
	CancelledOrders  int     `json:"cancelled_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(ctx context.Context, input OrderCreate) (*Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*Order, error)
	List(ctx context.Context, params pagination.Params, filters OrderFilters) ([]Order, int, error)
	Update(ctx context.Context, id string, update OrderUpdate) (*Order, error)
	Delete(ctx context.Context, id string) error
	Statistics(ctx context.Context) (*OrderStatistics, error)
}
