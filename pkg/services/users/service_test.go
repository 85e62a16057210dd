package users

import (
	"context"
	"testing"

	"github.com/pd-tools/partner-desk/pkg/models/domain"
	"github.com/pd-tools/partner-desk/pkg/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore() *memory.Store {
	s := memory.NewStore()
	s.CreateUser(domain.User{ID: "u-1", Name: "Alice Partner", Email: "alice@example.com", Type: domain.UserTypePartner, Country: "Brazil", Status: domain.UserStatusActive})
	s.CreateUser(domain.User{ID: "u-2", Name: "Bob Customer", Email: "bob@example.com", Type: domain.UserTypeCustomer, Country: "Chile", Status: domain.UserStatusActive})
	s.CreateUser(domain.User{ID: "u-3", Name: "Carol Customer", Email: "carol@shop.io", Type: domain.UserTypeCustomer, Country: "Brazil", Status: domain.UserStatusInactive})
	return s
}

func TestList_Filters(t *testing.T) {
	svc := NewService(seededStore())
	ctx := context.Background()

	tests := []struct {
		name    string
		filters domain.UserFilters
		wantIDs []string
	}{
		{name: "no filters", filters: domain.UserFilters{}, wantIDs: []string{"u-1", "u-2", "u-3"}},
		{name: "by status", filters: domain.UserFilters{Status: domain.UserStatusInactive}, wantIDs: []string{"u-3"}},
		{name: "by type", filters: domain.UserFilters{Type: domain.UserTypeCustomer}, wantIDs: []string{"u-2", "u-3"}},
		{name: "search matches name case-insensitively", filters: domain.UserFilters{Search: "alice"}, wantIDs: []string{"u-1"}},
		{name: "search matches email", filters: domain.UserFilters{Search: "shop.io"}, wantIDs: []string{"u-3"}},
		{name: "filters combine", filters: domain.UserFilters{Status: domain.UserStatusActive, Type: domain.UserTypeCustomer}, wantIDs: []string{"u-2"}},
		{name: "no matches", filters: domain.UserFilters{Search: "zelda"}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.List(ctx, tt.filters)
			ids := make([]string, 0, len(got))
			for _, u := range got {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGet(t *testing.T) {
	svc := NewService(seededStore())

	user, err := svc.Get(context.Background(), "u-2")
	require.NoError(t, err)
	assert.Equal(t, "Bob Customer", user.Name)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_AllowListedFields(t *testing.T) {
	svc := NewService(seededStore())

	name := "Alice Renamed"
	status := domain.UserStatusInactive
	updated, err := svc.Update(context.Background(), "u-1", domain.UserUpdate{
		Name:   &name,
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Renamed", updated.Name)
	assert.Equal(t, domain.UserStatusInactive, updated.Status)
	// Untouched fields survive.
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, domain.UserTypePartner, updated.Type)
}

func TestUpdate_InvalidPayload(t *testing.T) {
	svc := NewService(seededStore())

	badEmail := "not-an-email"
	_, err := svc.Update(context.Background(), "u-1", domain.UserUpdate{Email: &badEmail})
	assert.Error(t, err)

	badStatus := domain.UserStatus("frozen")
	_, err = svc.Update(context.Background(), "u-1", domain.UserUpdate{Status: &badStatus})
	assert.Error(t, err)
}

func TestUpdate_MissingUser(t *testing.T) {
	svc := NewService(seededStore())

	name := "Nobody"
	_, err := svc.Update(context.Background(), "missing", domain.UserUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}
