package api

type Order struct {
	ID          string  `json:"id"`
	Reference   string  `json:"orderId"`
	UserID      string  `json:"userId"`
	Status      string  `json:"status"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	ProductName string  `json:"productName,omitempty"`
}
