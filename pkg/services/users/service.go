package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pd-tools/partner-desk/pkg/models/domain"
)

// ErrNotFound is returned when a user id does not resolve.
var ErrNotFound = errors.New("user not found")

type Service interface {
	List(ctx context.Context, filters domain.UserFilters) []domain.User
	Get(ctx context.Context, id string) (domain.User, error)
	Update(ctx context.Context, id string, update domain.UserUpdate) (domain.User, error)
}

// Store is the slice of the record store the service needs.
type Store interface {
	Users() []domain.User
	FindUser(id string) (domain.User, bool)
	UpdateUser(id string, fn func(*domain.User)) (domain.User, error)
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

func (s *service) List(_ context.Context, filters domain.UserFilters) []domain.User {
	users := s.store.Users()
	result := make([]domain.User, 0, len(users))
	term := strings.ToLower(filters.Search)

	for _, u := range users {
		if filters.Status != "" && u.Status != filters.Status {
			continue
		}
		if filters.Type != "" && u.Type != filters.Type {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(u.Name), term) &&
			!strings.Contains(strings.ToLower(u.Email), term) {
			continue
		}
		result = append(result, u)
	}
	return result
}

func (s *service) Get(_ context.Context, id string) (domain.User, error) {
	user, ok := s.store.FindUser(id)
	if !ok {
		return domain.User{}, fmt.Errorf("get user %s: %w", id, ErrNotFound)
	}
	return user, nil
}

// Update applies the allow-listed fields only; anything else in the
// payload is ignored.
func (s *service) Update(_ context.Context, id string, update domain.UserUpdate) (domain.User, error) {
	if err := s.validate.Struct(update); err != nil {
		return domain.User{}, fmt.Errorf("validate user update: %w", err)
	}

	updated, err := s.store.UpdateUser(id, func(u *domain.User) {
		if update.Name != nil {
			u.Name = *update.Name
		}
		if update.Email != nil {
			u.Email = *update.Email
		}
		if update.Status != nil {
			u.Status = *update.Status
		}
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("update user %s: %w", id, ErrNotFound)
	}
	return updated, nil
}
