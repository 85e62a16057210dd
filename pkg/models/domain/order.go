package domain

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses is the canonical enumeration order. Status breakdowns are
// always emitted in this order, including zero-count entries.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

type Order struct {
	ID          string
	Reference   string // human-facing order code, e.g. "AAB003"
	UserID      string
	Status      OrderStatus
	Amount      float64
	Date        string // ISO calendar date, YYYY-MM-DD; may be empty
	ProductName string
}

// OrderFilters narrows an order listing. DateFrom/DateTo are inclusive
// ISO dates compared lexically, which is equivalent to chronological
// comparison for well-formed YYYY-MM-DD values.
type OrderFilters struct {
	Status   OrderStatus
	DateFrom string
	DateTo   string
}

type OrderUpdate struct {
	Status *OrderStatus `json:"status" validate:"omitempty,oneof=pending processing delivered cancelled"`
	Amount *float64     `json:"amount" validate:"omitempty,gte=0"`
}
