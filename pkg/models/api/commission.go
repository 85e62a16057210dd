package api

type Commission struct {
	ID      string  `json:"id"`
	UserID  string  `json:"userId"`
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
}
