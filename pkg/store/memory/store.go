package memory

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/pd-tools/partner-desk/pkg/models/domain"
)

// ErrNotFound is returned when a record id does not resolve.
var ErrNotFound = errors.New("record not found")

// Store is an in-memory record store for the three backoffice collections.
// Listings and lookups return copies, so callers can treat results as
// immutable snapshots. Safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	users       []domain.User
	orders      []domain.Order
	commissions []domain.Commission

	userIdx       map[string]int
	orderIdx      map[string]int
	commissionIdx map[string]int
}

func NewStore() *Store {
	return &Store{
		userIdx:       map[string]int{},
		orderIdx:      map[string]int{},
		commissionIdx: map[string]int{},
	}
}

// Users returns a snapshot of all users in insertion order.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// Orders returns a snapshot of all orders in insertion order.
func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Commissions returns a snapshot of all commissions in insertion order.
func (s *Store) Commissions() []domain.Commission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Commission, len(s.commissions))
	copy(out, s.commissions)
	return out
}

func (s *Store) FindUser(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.userIdx[id]
	if !ok {
		return domain.User{}, false
	}
	return s.users[i], true
}

func (s *Store) FindOrder(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.orderIdx[id]
	if !ok {
		return domain.Order{}, false
	}
	return s.orders[i], true
}

func (s *Store) FindCommission(id string) (domain.Commission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.commissionIdx[id]
	if !ok {
		return domain.Commission{}, false
	}
	return s.commissions[i], true
}

// CreateUser inserts a user, assigning a fresh id when none is supplied,
// and returns the stored record.
func (s *Store) CreateUser(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	s.userIdx[u.ID] = len(s.users)
	s.users = append(s.users, u)
	return u
}

func (s *Store) CreateOrder(o domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	s.orderIdx[o.ID] = len(s.orders)
	s.orders = append(s.orders, o)
	return o
}

func (s *Store) CreateCommission(c domain.Commission) domain.Commission {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.commissionIdx[c.ID] = len(s.commissions)
	s.commissions = append(s.commissions, c)
	return c
}

// UpdateUser applies fn to the stored user under the write lock and
// returns the updated record. The record id cannot be changed.
func (s *Store) UpdateUser(id string, fn func(*domain.User)) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.userIdx[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	fn(&s.users[i])
	s.users[i].ID = id
	return s.users[i], nil
}

func (s *Store) UpdateOrder(id string, fn func(*domain.Order)) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.orderIdx[id]
	if !ok {
		return domain.Order{}, ErrNotFound
	}
	fn(&s.orders[i])
	s.orders[i].ID = id
	return s.orders[i], nil
}

func (s *Store) UpdateCommission(id string, fn func(*domain.Commission)) (domain.Commission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.commissionIdx[id]
	if !ok {
		return domain.Commission{}, ErrNotFound
	}
	fn(&s.commissions[i])
	s.commissions[i].ID = id
	return s.commissions[i], nil
}
