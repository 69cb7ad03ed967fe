package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type OrderItem struct {
	OrderID   uint64
	ProductID uint64
	Quantity  int32
	Price     decimal.Decimal
	Product   *Product
}

type Order struct {
	ID                uint64
	UserID            uint64
	ShippingAddressID uint64
	TotalAmount       decimal.Decimal
	Status            OrderStatus
	PaymentStatus     PaymentStatus
	Notes             string
	CreatedAt         time.Time
	Items             []OrderItem
	User              *User
	ShippingAddress   *Address
}
