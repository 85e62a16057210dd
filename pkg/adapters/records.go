package adapters

import (
	"github.com/pd-tools/partner-desk/pkg/models/api"
	"github.com/pd-tools/partner-desk/pkg/models/domain"
)

func MapUserDomainToApi(u domain.User) api.User {
	return api.User{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Type:    string(u.Type),
		Country: u.Country,
		Status:  string(u.Status),
	}
}

func MapUsersDomainToApi(users []domain.User) []api.User {
	response := make([]api.User, 0, len(users))
	for _, u := range users {
		response = append(response, MapUserDomainToApi(u))
	}
	return response
}

func MapOrderDomainToApi(o domain.Order) api.Order {
	return api.Order{
		ID:          o.ID,
		Reference:   o.Reference,
		UserID:      o.UserID,
		Status:      string(o.Status),
		Amount:      o.Amount,
		Date:        o.Date,
		ProductName: o.ProductName,
	}
}

func MapOrdersDomainToApi(orders []domain.Order) []api.Order {
	response := make([]api.Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, MapOrderDomainToApi(o))
	}
	return response
}

func MapCommissionDomainToApi(c domain.Commission) api.Commission {
	return api.Commission{
		ID:      c.ID,
		UserID:  c.UserID,
		OrderID: c.OrderID,
		Amount:  c.Amount,
		Status:  string(c.Status),
	}
}

func MapCommissionsDomainToApi(commissions []domain.Commission) []api.Commission {
	response := make([]api.Commission, 0, len(commissions))
	for _, c := range commissions {
		response = append(response, MapCommissionDomainToApi(c))
	}
	return response
}
