package api

type Summary struct {
	TotalUsers             int     `json:"totalUsers"`
	ActiveUsers            int     `json:"activeUsers"`
	TotalOrders            int     `json:"totalOrders"`
	TotalOrdersAmount      float64 `json:"totalOrdersAmount"`
	TotalCommissionsAmount float64 `json:"totalCommissionsAmount"`
}

type StatusBreakdown struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type ProductOrderCount struct {
	ProductName string `json:"productName"`
	Count       int    `json:"count"`
}

type BestSeller struct {
	UserID   string  `json:"userId"`
	UserName string  `json:"userName"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

type Report struct {
	Summary             Summary             `json:"summary"`
	OrdersByStatus      []StatusBreakdown   `json:"ordersByStatus"`
	CommissionsByStatus []StatusBreakdown   `json:"commissionsByStatus"`
	TopProductsByOrders []ProductOrderCount `json:"topProductsByOrders"`
	BestSellersMonth    []BestSeller        `json:"bestSellersCurrentMonth"`
}

type Errors struct {
	Errors []string `json:"errors"`
}
