package port

import (
	"context"
	"time"

	"github.com/govalues/decimal"
	"github.com/mkalinin/shopadmin/internal/core/domain"
)

// OrderFilter narrows ListOrders. Zero-value fields are unconstrained; both
// dates must be set for the range to apply, and both bounds are inclusive.
type OrderFilter struct {
	Status        domain.OrderStatus
	PaymentStatus domain.PaymentStatus
	StartDate     *time.Time
	EndDate       *time.Time
}

type PaymentFilter struct {
	SellerID      uint64
	Status        domain.PaymentStatus
	PaymentMethod string
	StartDate     *time.Time
	EndDate       *time.Time
}

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	ListOrders(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// Seller payment
	CreatePayment(ctx context.Context, payment *domain.SellerPayment) (*domain.SellerPayment, error)
	ListPaymentKeys(ctx context.Context) ([]domain.PaymentKey, error)
	ListPayments(ctx context.Context, filter PaymentFilter) ([]*domain.SellerPayment, error)

	// User
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// Aggregates
	CountOrders(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountOrdersByStatus(ctx context.Context) (map[domain.OrderStatus]int64, error)
	ListRecentOrders(ctx context.Context, limit uint64) ([]domain.RecentOrder, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	MonthlySales(ctx context.Context) ([]domain.MonthlySales, error)
}
