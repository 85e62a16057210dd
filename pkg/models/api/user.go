package api

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Type    string `json:"type"`
	Country string `json:"country"`
	Status  string `json:"status"`
}
