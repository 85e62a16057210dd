package dashboard

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pd-tools/partner-desk/pkg/models/domain"
)

const (
	// noProductLabel groups orders that carry no product name.
	noProductLabel = "No product"
	// topEntriesLimit caps the ranked views (top products, best sellers).
	topEntriesLimit = 8
)

// OrderResolver resolves an order referenced by a commission. The second
// return value reports whether the id resolved.
type OrderResolver func(id string) (domain.Order, bool)

// Registry is the read surface the reporter needs from the record store.
type Registry interface {
	Users() []domain.User
	Orders() []domain.Order
	Commissions() []domain.Commission
	FindOrder(id string) (domain.Order, bool)
}

// Reporter derives dashboard reports from a record registry.
type Reporter struct {
	registry Registry
	now      func() time.Time
}

// NewReporter returns a Reporter backed by registry. A nil now defaults to
// time.Now; tests inject a fixed clock to pin the empty-dataset fallback.
func NewReporter(registry Registry, now func() time.Time) *Reporter {
	if now == nil {
		now = time.Now
	}
	return &Reporter{registry: registry, now: now}
}

// GetReport snapshots the three collections and computes the report.
func (r *Reporter) GetReport(_ context.Context) domain.Report {
	return ComputeReport(
		r.registry.Users(),
		r.registry.Orders(),
		r.registry.Commissions(),
		r.registry.FindOrder,
		r.now,
	)
}

// ComputeReport is a pure projection of the three collections into the
// dashboard report. It never mutates its inputs and is total over any
// well-typed input: missing amounts count as zero, commissions whose order
// or order date cannot be resolved are skipped from date-dependent views,
// and unknown seller ids get a label derived from the raw id.
func ComputeReport(
	users []domain.User,
	orders []domain.Order,
	commissions []domain.Commission,
	resolveOrder OrderResolver,
	now func() time.Time,
) domain.Report {
	return domain.Report{
		Summary:             computeSummary(users, orders, commissions),
		OrdersByStatus:      ordersByStatus(orders),
		CommissionsByStatus: commissionsByStatus(commissions),
		TopProductsByOrders: topProductsByOrders(orders),
		BestSellersMonth:    bestSellersMonth(users, commissions, resolveOrder, now),
	}
}

func computeSummary(users []domain.User, orders []domain.Order, commissions []domain.Commission) domain.Summary {
	summary := domain.Summary{
		TotalUsers:  len(users),
		TotalOrders: len(orders),
	}
	for _, u := range users {
		if u.Status == domain.UserStatusActive {
			summary.ActiveUsers++
		}
	}
	for _, o := range orders {
		summary.TotalOrdersAmount += o.Amount
	}
	for _, c := range commissions {
		summary.TotalCommissionsAmount += c.Amount
	}
	return summary
}

// ordersByStatus always emits the four statuses in enumeration order, so
// downstream rendering can rely on a stable shape.
func ordersByStatus(orders []domain.Order) []domain.OrderStatusBreakdown {
	byStatus := make(map[domain.OrderStatus]*domain.OrderStatusBreakdown, len(domain.OrderStatuses))
	result := make([]domain.OrderStatusBreakdown, len(domain.OrderStatuses))
	for i, status := range domain.OrderStatuses {
		result[i] = domain.OrderStatusBreakdown{Status: status}
		byStatus[status] = &result[i]
	}
	for _, o := range orders {
		if entry, ok := byStatus[o.Status]; ok {
			entry.Count++
			entry.Amount += o.Amount
		}
	}
	return result
}

func commissionsByStatus(commissions []domain.Commission) []domain.CommissionStatusBreakdown {
	byStatus := make(map[domain.CommissionStatus]*domain.CommissionStatusBreakdown, len(domain.CommissionStatuses))
	result := make([]domain.CommissionStatusBreakdown, len(domain.CommissionStatuses))
	for i, status := range domain.CommissionStatuses {
		result[i] = domain.CommissionStatusBreakdown{Status: status}
		byStatus[status] = &result[i]
	}
	for _, c := range commissions {
		if entry, ok := byStatus[c.Status]; ok {
			entry.Count++
			entry.Amount += c.Amount
		}
	}
	return result
}

// topProductsByOrders groups orders by product name and ranks the groups
// by order count, descending. Ties keep first-seen order.
func topProductsByOrders(orders []domain.Order) []domain.ProductOrderCount {
	counts := map[string]int{}
	var firstSeen []string
	for _, o := range orders {
		name := o.ProductName
		if name == "" {
			name = noProductLabel
		}
		if _, ok := counts[name]; !ok {
			firstSeen = append(firstSeen, name)
		}
		counts[name]++
	}

	result := make([]domain.ProductOrderCount, 0, len(firstSeen))
	for _, name := range firstSeen {
		result = append(result, domain.ProductOrderCount{ProductName: name, Count: counts[name]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if len(result) > topEntriesLimit {
		result = result[:topEntriesLimit]
	}
	return result
}

// bestSellersMonth ranks sellers by commission amount within the latest
// (year, month) observed across the resolved order dates of all
// commissions. When no commission resolves to a dated order, the current
// calendar month serves as the reporting period, yielding an empty but
// well-formed result.
func bestSellersMonth(
	users []domain.User,
	commissions []domain.Commission,
	resolveOrder OrderResolver,
	now func() time.Time,
) []domain.SellerMonthTotal {
	latestYear, latestMonth := 0, 0
	for _, c := range commissions {
		y, m, ok := resolveOrderMonth(c, resolveOrder)
		if !ok {
			continue
		}
		if y > latestYear || (y == latestYear && m > latestMonth) {
			latestYear, latestMonth = y, m
		}
	}
	if latestYear == 0 || latestMonth == 0 {
		current := now()
		latestYear, latestMonth = current.Year(), int(current.Month())
	}

	totals := map[string]*domain.SellerMonthTotal{}
	var firstSeen []string
	for _, c := range commissions {
		y, m, ok := resolveOrderMonth(c, resolveOrder)
		if !ok || y != latestYear || m != latestMonth {
			continue
		}
		if c.UserID == "" {
			continue
		}
		entry, ok := totals[c.UserID]
		if !ok {
			entry = &domain.SellerMonthTotal{UserID: c.UserID}
			totals[c.UserID] = entry
			firstSeen = append(firstSeen, c.UserID)
		}
		entry.Amount += c.Amount
		entry.Count++
	}

	nameByID := make(map[string]string, len(users))
	for _, u := range users {
		nameByID[u.ID] = u.Name
	}

	result := make([]domain.SellerMonthTotal, 0, len(firstSeen))
	for _, id := range firstSeen {
		entry := *totals[id]
		if name, ok := nameByID[id]; ok && name != "" {
			entry.UserName = name
		} else {
			entry.UserName = "ID " + id
		}
		result = append(result, entry)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount > result[j].Amount
	})
	if len(result) > topEntriesLimit {
		result = result[:topEntriesLimit]
	}
	return result
}

// resolveOrderMonth extracts the (year, month) of the order a commission
// points at. Unresolvable orders, empty dates, and dates that do not start
// with numeric year-month parts are reported as missing.
func resolveOrderMonth(c domain.Commission, resolveOrder OrderResolver) (int, int, bool) {
	order, ok := resolveOrder(c.OrderID)
	if !ok || order.Date == "" {
		return 0, 0, false
	}
	parts := strings.SplitN(order.Date, "-", 3)
	if len(parts) < 2 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return year, month, true
}
