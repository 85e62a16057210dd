package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pd-tools/partner-desk/pkg/models/domain"
)

// ErrNotFound is returned when an order id does not resolve.
var ErrNotFound = errors.New("order not found")

type Service interface {
	List(ctx context.Context, filters domain.OrderFilters) []domain.Order
	Get(ctx context.Context, id string) (domain.Order, error)
	Update(ctx context.Context, id string, update domain.OrderUpdate) (domain.Order, error)
}

type Store interface {
	Orders() []domain.Order
	FindOrder(id string) (domain.Order, bool)
	UpdateOrder(id string, fn func(*domain.Order)) (domain.Order, error)
}

type service struct {
	store    Store
	validate *validator.Validate
}

func NewService(store Store) Service {
	return &service{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *service) List(_ context.Context, filters domain.OrderFilters) []domain.Order {
	orders := s.store.Orders()
	result := make([]domain.Order, 0, len(orders))

	for _, o := range orders {
		if filters.Status != "" && o.Status != filters.Status {
			continue
		}
		// Inclusive bounds; lexical compare works for YYYY-MM-DD.
		if filters.DateFrom != "" && o.Date < filters.DateFrom {
			continue
		}
		if filters.DateTo != "" && o.Date > filters.DateTo {
			continue
		}
		result = append(result, o)
	}
	return result
}

func (s *service) Get(_ context.Context, id string) (domain.Order, error) {
	order, ok := s.store.FindOrder(id)
	if !ok {
		return domain.Order{}, fmt.Errorf("get order %s: %w", id, ErrNotFound)
	}
	return order, nil
}

func (s *service) Update(_ context.Context, id string, update domain.OrderUpdate) (domain.Order, error) {
	if err := s.validate.Struct(update); err != nil {
		return domain.Order{}, fmt.Errorf("validate order update: %w", err)
	}

	updated, err := s.store.UpdateOrder(id, func(o *domain.Order) {
		if update.Status != nil {
			o.Status = *update.Status
		}
		if update.Amount != nil {
			o.Amount = *update.Amount
		}
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order %s: %w", id, ErrNotFound)
	}
	return updated, nil
}
