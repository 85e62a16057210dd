package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pd-tools/partner-desk/pkg/models/api"
	"github.com/pd-tools/partner-desk/pkg/models/domain"
	"github.com/pd-tools/partner-desk/pkg/services/commissions"
	"github.com/pd-tools/partner-desk/pkg/services/dashboard"
	"github.com/pd-tools/partner-desk/pkg/services/orders"
	"github.com/pd-tools/partner-desk/pkg/services/users"
	"github.com/pd-tools/partner-desk/pkg/store/memory"
)

func testClock() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func seededRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore()
	store.CreateUser(domain.User{ID: "u-1", Name: "Alice", Email: "alice@example.com", Type: domain.UserTypePartner, Country: "Brazil", Status: domain.UserStatusActive})
	store.CreateUser(domain.User{ID: "u-2", Name: "Bob", Email: "bob@example.com", Type: domain.UserTypeCustomer, Country: "Chile", Status: domain.UserStatusActive})
	store.CreateUser(domain.User{ID: "u-3", Name: "Carol", Email: "carol@example.com", Type: domain.UserTypeCustomer, Country: "Brazil", Status: domain.UserStatusInactive})

	store.CreateOrder(domain.Order{ID: "o-1", Reference: "AAA001", UserID: "u-2", Status: domain.OrderStatusDelivered, Amount: 100, Date: "2025-02-10", ProductName: "Router"})
	store.CreateOrder(domain.Order{ID: "o-2", Reference: "BBB001", UserID: "u-3", Status: domain.OrderStatusPending, Amount: 200, Date: "2025-02-15", ProductName: "Switch"})
	store.CreateOrder(domain.Order{ID: "o-3", Reference: "CCC001", UserID: "u-2", Status: domain.OrderStatusDelivered, Amount: 150, Date: "2025-02-10", ProductName: "Router"})

	store.CreateCommission(domain.Commission{ID: "c-1", UserID: "u-1", OrderID: "o-1", Amount: 10, Status: domain.CommissionStatusPaid})
	store.CreateCommission(domain.Commission{ID: "c-2", UserID: "u-2", OrderID: "o-2", Amount: 20, Status: domain.CommissionStatusPending})
	store.CreateCommission(domain.Commission{ID: "c-3", UserID: "u-1", OrderID: "o-3", Amount: 15, Status: domain.CommissionStatusPaid})

	logger := zerolog.New(zerolog.NewTestWriter(t))

	return ConfigureRouter(Config{
		Dependencies: Dependencies{
			Users:       users.NewService(store),
			Orders:      orders.NewService(store),
			Commissions: commissions.NewService(store),
			Dashboard:   dashboard.NewReporter(store, testClock),
			Logger:      logger,
		},
	})
}

func TestWebAPI_Endpoints(t *testing.T) {
	testServer := httptest.NewServer(seededRouter(t))
	defer testServer.Close()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:           "ListUsers",
			path:           "/api/v1/users",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var response []api.User
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Len(t, response, 3)
			},
		},
		{
			name:           "ListUsers_Filtered",
			path:           "/api/v1/users?status=active&search=ali",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var response []api.User
				require.NoError(t, json.Unmarshal(body, &response))
				require.Len(t, response, 1)
				assert.Equal(t, "Alice", response[0].Name)
			},
		},
		{
			name:           "GetUser",
			path:           "/api/v1/users/u-2",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var response api.User
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "Bob", response.Name)
			},
		},
		{
			name:           "GetUser_NotFound",
			path:           "/api/v1/users/missing",
			expectedStatus: http.StatusNotFound,
			check: func(t *testing.T, body []byte) {
				var response api.Errors
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, []string{"Not found"}, response.Errors)
			},
		},
		{
			name:           "ListOrders_DateRange",
			path:           "/api/v1/orders?dateFrom=2025-02-11&dateTo=2025-02-28",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var response []api.Order
				require.NoError(t, json.Unmarshal(body, &response))
				require.Len(t, response, 1)
				assert.Equal(t, "BBB001", response[0].Reference)
			},
		},
		{
			name:           "ListCommissions_ByUser",
			path:           "/api/v1/commissions?userId=u-1",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var response []api.Commission
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Len(t, response, 2)
			},
		},
		{
			name:           "GetDashboard",
			path:           "/api/v1/dashboard",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var response api.Report
				require.NoError(t, json.Unmarshal(body, &response))

				assert.Equal(t, api.Summary{
					TotalUsers:             3,
					ActiveUsers:            2,
					TotalOrders:            3,
					TotalOrdersAmount:      450,
					TotalCommissionsAmount: 45,
				}, response.Summary)

				require.Len(t, response.OrdersByStatus, 4)
				assert.Equal(t, api.StatusBreakdown{Status: "pending", Count: 1, Amount: 200}, response.OrdersByStatus[0])
				assert.Equal(t, api.StatusBreakdown{Status: "delivered", Count: 2, Amount: 250}, response.OrdersByStatus[2])

				require.Len(t, response.CommissionsByStatus, 2)
				assert.Equal(t, api.StatusBreakdown{Status: "paid", Count: 2, Amount: 25}, response.CommissionsByStatus[1])

				require.NotEmpty(t, response.TopProductsByOrders)
				assert.Equal(t, api.ProductOrderCount{ProductName: "Router", Count: 2}, response.TopProductsByOrders[0])

				require.Len(t, response.BestSellersMonth, 2)
				assert.Equal(t, api.BestSeller{UserID: "u-1", UserName: "Alice", Amount: 25, Count: 2}, response.BestSellersMonth[0])
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			tc.check(t, body)
		})
	}
}

func TestWebAPI_UpdateFlow(t *testing.T) {
	testServer := httptest.NewServer(seededRouter(t))
	defer testServer.Close()

	patch := func(path, payload string) *http.Response {
		req, err := http.NewRequest(http.MethodPatch, testServer.URL+path, bytes.NewBufferString(payload))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("order status update is visible on the dashboard", func(t *testing.T) {
		resp := patch("/api/v1/orders/o-2", `{"status":"delivered"}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		dashResp, err := http.Get(testServer.URL + "/api/v1/dashboard")
		require.NoError(t, err)
		defer dashResp.Body.Close()

		var report api.Report
		require.NoError(t, json.NewDecoder(dashResp.Body).Decode(&report))
		assert.Equal(t, 0, report.OrdersByStatus[0].Count)
		assert.Equal(t, 3, report.OrdersByStatus[2].Count)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		resp := patch("/api/v1/orders/o-1", `{"status":"shipped"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown order is a 404", func(t *testing.T) {
		resp := patch("/api/v1/orders/missing", `{"status":"pending"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
