package domain

import "github.com/govalues/decimal"

type Product struct {
	ID         uint64
	Subject    string
	FinalPrice decimal.Decimal
	Images     []string
	SellerID   uint64
	Seller     *User
}
