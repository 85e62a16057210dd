package adapters

import (
	"github.com/pd-tools/partner-desk/pkg/models/api"
	"github.com/pd-tools/partner-desk/pkg/models/domain"
)

func MapReportDomainToApi(report domain.Report) api.Report {
	ordersByStatus := make([]api.StatusBreakdown, 0, len(report.OrdersByStatus))
	for _, b := range report.OrdersByStatus {
		ordersByStatus = append(ordersByStatus, api.StatusBreakdown{
			Status: string(b.Status),
			Count:  b.Count,
			Amount: b.Amount,
		})
	}

	commissionsByStatus := make([]api.StatusBreakdown, 0, len(report.CommissionsByStatus))
	for _, b := range report.CommissionsByStatus {
		commissionsByStatus = append(commissionsByStatus, api.StatusBreakdown{
			Status: string(b.Status),
			Count:  b.Count,
			Amount: b.Amount,
		})
	}

	topProducts := make([]api.ProductOrderCount, 0, len(report.TopProductsByOrders))
	for _, p := range report.TopProductsByOrders {
		topProducts = append(topProducts, api.ProductOrderCount{
			ProductName: p.ProductName,
			Count:       p.Count,
		})
	}

	bestSellers := make([]api.BestSeller, 0, len(report.BestSellersMonth))
	for _, s := range report.BestSellersMonth {
		bestSellers = append(bestSellers, api.BestSeller{
			UserID:   s.UserID,
			UserName: s.UserName,
			Amount:   s.Amount,
			Count:    s.Count,
		})
	}

	return api.Report{
		Summary: api.Summary{
			TotalUsers:             report.Summary.TotalUsers,
			ActiveUsers:            report.Summary.ActiveUsers,
			TotalOrders:            report.Summary.TotalOrders,
			TotalOrdersAmount:      report.Summary.TotalOrdersAmount,
			TotalCommissionsAmount: report.Summary.TotalCommissionsAmount,
		},
		OrdersByStatus:      ordersByStatus,
		CommissionsByStatus: commissionsByStatus,
		TopProductsByOrders: topProducts,
		BestSellersMonth:    bestSellers,
	}
}
