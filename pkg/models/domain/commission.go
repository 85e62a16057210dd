package domain

type CommissionStatus string

const (
	CommissionStatusPending CommissionStatus = "pending"
	CommissionStatusPaid    CommissionStatus = "paid"
)

// CommissionStatuses is the canonical enumeration order for status
// breakdowns, mirroring OrderStatuses.
var CommissionStatuses = []CommissionStatus{
	CommissionStatusPending,
	CommissionStatusPaid,
}

type Commission struct {
	ID      string
	UserID  string
	OrderID string
	Amount  float64
	Status  CommissionStatus
}

type CommissionFilters struct {
	Status  CommissionStatus
	UserID  string
	OrderID string
}

type CommissionUpdate struct {
	UserID  *string           `json:"userId" validate:"omitempty,min=1"`
	OrderID *string           `json:"orderId" validate:"omitempty,min=1"`
	Amount  *float64          `json:"amount" validate:"omitempty,gte=0"`
	Status  *CommissionStatus `json:"status" validate:"omitempty,oneof=pending paid"`
}
