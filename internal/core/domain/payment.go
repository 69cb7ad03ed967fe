package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// SellerPayment records one transfer of funds to a seller for one line item
// of one order. Records are immutable once created.
type SellerPayment struct {
	ID            uint64
	SellerID      uint64
	OrderID       uint64
	ProductID     uint64
	Amount        decimal.Decimal
	PaymentMethod string
	Status        PaymentStatus
	ProcessedByID uint64
	Notes         string
	CreatedAt     time.Time
	Seller        *User
	Order         *Order
	Product       *Product
	ProcessedBy   *User
}

// PaymentKey identifies the line item a payment settles. The ledger holds at
// most one payment per key.
type PaymentKey struct {
	OrderID   uint64
	ProductID uint64
}
