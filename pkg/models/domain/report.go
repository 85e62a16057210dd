package domain

// Report is the complete dashboard projection over the three record
// collections. It is a read-only derivation; nothing in it aliases the
// source records.
type Report struct {
	Summary             Summary
	OrdersByStatus      []OrderStatusBreakdown
	CommissionsByStatus []CommissionStatusBreakdown
	TopProductsByOrders []ProductOrderCount
	BestSellersMonth    []SellerMonthTotal
}

// Summary holds the headline counters shown at the top of the dashboard.
type Summary struct {
	TotalUsers             int
	ActiveUsers            int
	TotalOrders            int
	TotalOrdersAmount      float64
	TotalCommissionsAmount float64
}

type OrderStatusBreakdown struct {
	Status OrderStatus
	Count  int
	Amount float64
}

type CommissionStatusBreakdown struct {
	Status CommissionStatus
	Count  int
	Amount float64
}

type ProductOrderCount struct {
	ProductName string
	Count       int
}

// SellerMonthTotal is one row of the best-sellers ranking for the latest
// month with commission activity.
type SellerMonthTotal struct {
	UserID   string
	UserName string
	Amount   float64
	Count    int
}
