package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/mkalinin/shopadmin/internal/core/port"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	Handler
	service port.Service
}

func NewDashboardHandler(service port.Service, logger *zap.Logger) (*DashboardHandler, error) {
	return &DashboardHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type countsResp struct {
	Orders   int64           `json:"orders"`
	Users    int64           `json:"users"`
	Products int64           `json:"products"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type statusCountsResp struct {
	Processing int64 `json:"processing"`
	Shipped    int64 `json:"shipped"`
	Delivered  int64 `json:"delivered"`
	Cancelled  int64 `json:"cancelled"`
}

type recentOrderResp struct {
	ID          uint64          `json:"id"`
	UserName    string          `json:"user"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type monthlySalesResp struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

type dashboardResp struct {
	Counts         countsResp         `json:"counts"`
	OrdersByStatus statusCountsResp   `json:"ordersByStatus"`
	RecentOrders   []recentOrderResp  `json:"recentOrders"`
	MonthlySales   []monthlySalesResp `json:"monthlySales"`
}

// DashboardStats answers GET /api/admin/dashboard-stats.
func (dh *DashboardHandler) DashboardStats(ctx *gin.Context) {
	stats, err := dh.service.DashboardStats(ctx)
	if err != nil {
		dh.handleError(ctx, err)
		return
	}

	result := dashboardResp{
		Counts: countsResp{
			Orders:   stats.Counts.Orders,
			Users:    stats.Counts.Users,
			Products: stats.Counts.Products,
			Revenue:  stats.Counts.Revenue,
		},
		OrdersByStatus: statusCountsResp{
			Processing: stats.OrdersByStatus.Processing,
			Shipped:    stats.OrdersByStatus.Shipped,
			Delivered:  stats.OrdersByStatus.Delivered,
			Cancelled:  stats.OrdersByStatus.Cancelled,
		},
		RecentOrders: make([]recentOrderResp, 0, len(stats.RecentOrders)),
		MonthlySales: make([]monthlySalesResp, 0, len(stats.MonthlySales)),
	}

	for _, order := range stats.RecentOrders {
		result.RecentOrders = append(result.RecentOrders, recentOrderResp{
			ID:          order.ID,
			UserName:    order.UserName,
			TotalAmount: order.TotalAmount,
			Status:      string(order.Status),
			CreatedAt:   order.CreatedAt,
		})
	}
	for _, sales := range stats.MonthlySales {
		result.MonthlySales = append(result.MonthlySales, monthlySalesResp{
			Year:  sales.Year,
			Month: sales.Month,
			Count: sales.Count,
			Total: sales.Total,
		})
	}

	dh.handleSuccess(ctx, "Dashboard statistics fetched successfully", result)
}
