package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type DashboardCounts struct {
	Orders   int64
	Users    int64
	Products int64
	Revenue  decimal.Decimal
}

// StatusCounts keeps one slot per known order status. Statuses absent from
// the data stay at zero, unknown values are dropped before it is built.
type StatusCounts struct {
	Processing int64
	Shipped    int64
	Delivered  int64
	Cancelled  int64
}

type RecentOrder struct {
	ID          uint64
	UserName    string
	TotalAmount decimal.Decimal
	Status      OrderStatus
	CreatedAt   time.Time
}

type MonthlySales struct {
	Year  int
	Month int
	Count int64
	Total decimal.Decimal
}

type DashboardStats struct {
	Counts         DashboardCounts
	OrdersByStatus StatusCounts
	RecentOrders   []RecentOrder
	MonthlySales   []MonthlySales
}
