package commissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pd-tools/partner-desk/pkg/models/domain"
)

// ErrNotFound is returned when a commission id does not resolve.
var ErrNotFound = errors.New("commission not found")

type Service interface {
	List(ctx context.Context, filters domain.CommissionFilters) []domain.Commission
	Get(ctx context.Context, id string) (domain.Commission, error)
	Update(ctx context.Context, id string, update domain.CommissionUpdate) (domain.Commission, error)
}

type Store interface {
	Commissions() []domain.Commission
	FindCommission(id string) (domain.Commission, bool)
	UpdateCommission(id string, fn func(*domain.Commission)) (domain.Commission, error)
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

func (s *service) List(_ context.Context, filters domain.CommissionFilters) []domain.Commission {
	commissions := s.store.Commissions()
	result := make([]domain.Commission, 0, len(commissions))

	for _, c := range commissions {
		if filters.Status != "" && c.Status != filters.Status {
			continue
		}
		if filters.UserID != "" && c.UserID != filters.UserID {
			continue
		}
		if filters.OrderID != "" && c.OrderID != filters.OrderID {
			continue
		}
		result = append(result, c)
	}
	return result
}

func (s *service) Get(_ context.Context, id string) (domain.Commission, error) {
	commission, ok := s.store.FindCommission(id)
	if !ok {
		return domain.Commission{}, fmt.Errorf("get commission %s: %w", id, ErrNotFound)
	}
	return commission, nil
}

func (s *service) Update(_ context.Context, id string, update domain.CommissionUpdate) (domain.Commission, error) {
	if err := s.validate.Struct(update); err != nil {
		return domain.Commission{}, fmt.Errorf("validate commission update: %w", err)
	}

	updated, err := s.store.UpdateCommission(id, func(c *domain.Commission) {
		if update.UserID != nil {
			c.UserID = *update.UserID
		}
		if update.OrderID != nil {
			c.OrderID = *update.OrderID
		}
		if update.Amount != nil {
			c.Amount = *update.Amount
		}
		if update.Status != nil {
			c.Status = *update.Status
		}
	})
	if err != nil {
		return domain.Commission{}, fmt.Errorf("update commission %s: %w", id, ErrNotFound)
	}
	return updated, nil
}
