package port

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/mkalinin/shopadmin/internal/core/domain"
)

// OrderUpdate carries a partial order update. Nil fields are left untouched.
type OrderUpdate struct {
	Status        *domain.OrderStatus
	PaymentStatus *domain.PaymentStatus
	Notes         *string
}

type PaymentInput struct {
	OrderID       uint64
	ProductID     uint64
	PaymentMethod string
	Amount        decimal.Decimal
	Notes         string
	ProcessedByID uint64
}

// SellerPaymentsReport couples the filtered payment list with the full user
// list, which consumers of the listing expect in the same payload.
type SellerPaymentsReport struct {
	Payments []*domain.SellerPayment
	Users    []*domain.User
}

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	ListUnpaidOrders(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID uint64, update OrderUpdate) (*domain.Order, error)
	ProcessSellerPayment(ctx context.Context, input PaymentInput) (*domain.SellerPayment, error)
	ListSellerPayments(ctx context.Context, filter PaymentFilter) (*SellerPaymentsReport, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
