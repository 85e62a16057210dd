package seed

import (
	"fmt"
	"time"

	"github.com/pd-tools/partner-desk/pkg/models/domain"
	"github.com/pd-tools/partner-desk/pkg/store/memory"
)

// Settings controls how many records Populate creates. ReferenceDate
// anchors the generated order dates; a zero value means "today".
type Settings struct {
	Users         int
	Orders        int
	Commissions   int
	ReferenceDate time.Time
}

var products = []string{
	"Router X200",
	"Switch S48",
	"Access Point A7",
	"Firewall F1",
	"", // some orders carry no product
	"Patch Panel P24",
}

// Populate fills the store with deterministic fixture data. Given the same
// settings it always produces the same records, so seeded environments are
// reproducible across restarts.
func Populate(store *memory.Store, settings Settings) {
	ref := settings.ReferenceDate
	if ref.IsZero() {
		ref = time.Now()
	}

	for i := 0; i < settings.Users; i++ {
		n := i + 1
		userType := domain.UserTypeCustomer
		if n%3 == 0 {
			userType = domain.UserTypePartner
		}
		status := domain.UserStatusActive
		if n%4 == 0 {
			status = domain.UserStatusInactive
		}
		store.CreateUser(domain.User{
			ID:      fmt.Sprintf("%d", n),
			Name:    fmt.Sprintf("User %d", n),
			Email:   fmt.Sprintf("user%d@example.com", n),
			Type:    userType,
			Country: "Brazil",
			Status:  status,
		})
	}

	for i := 0; i < settings.Orders; i++ {
		n := i + 1
		userID := fmt.Sprintf("%d", n%max(settings.Users, 1)+1)
		store.CreateOrder(domain.Order{
			ID:          fmt.Sprintf("%d", n),
			Reference:   orderReference(n),
			UserID:      userID,
			Status:      domain.OrderStatuses[i%len(domain.OrderStatuses)],
			Amount:      float64(100 + (i%20)*50),
			Date:        ref.AddDate(0, 0, -(i * 7 % 90)).Format("2006-01-02"),
			ProductName: products[i%len(products)],
		})
	}

	for i := 0; i < settings.Commissions; i++ {
		n := i + 1
		status := domain.CommissionStatusPaid
		if n%2 == 0 {
			status = domain.CommissionStatusPending
		}
		store.CreateCommission(domain.Commission{
			ID:      fmt.Sprintf("%d", n),
			UserID:  fmt.Sprintf("%d", n%max(settings.Users, 1)+1),
			OrderID: fmt.Sprintf("%d", n%max(settings.Orders, 1)+1),
			Amount:  float64(10 + (i%5)*5),
			Status:  status,
		})
	}
}

// orderReference renders the human order code: AAA001, BBB001, ...,
// ZZZ001, AAA002 and so on.
func orderReference(n int) string {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	letter := chars[(n-1)%26]
	block := (n-1)/26 + 1
	return fmt.Sprintf("%c%c%c%03d", letter, letter, letter, block)
}
