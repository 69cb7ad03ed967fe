package repository

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"

	"github.com/mkalinin/shopadmin/internal/core/domain"
	"github.com/mkalinin/shopadmin/internal/core/port"
)

func testQueryBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func TestListOrdersQuery_DateBounds(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	sql, args, err := listOrdersQuery(testQueryBuilder(), port.OrderFilter{
		PaymentStatus: domain.PaymentStatusCompleted,
		StartDate:     &start,
		EndDate:       &end,
	}).ToSql()
	assert.NoError(t, err)

	assert.Contains(t, sql, "o.created_at >= $")
	assert.Contains(t, sql, "o.created_at <= $")
	assert.NotContains(t, sql, "o.created_at > $")
	assert.NotContains(t, sql, "o.created_at < $")
	assert.Contains(t, args, start)
	assert.Contains(t, args, end)
	assert.Contains(t, sql, "ORDER BY o.created_at DESC")
}

func TestListOrdersQuery_NoDates(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter port.OrderFilter
	}{
		{name: "no bounds", filter: port.OrderFilter{Status: domain.OrderStatusShipped}},
		{name: "start only", filter: port.OrderFilter{StartDate: &start}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sql, _, err := listOrdersQuery(testQueryBuilder(), tc.filter).ToSql()
			assert.NoError(t, err)
			assert.NotContains(t, sql, "o.created_at >=")
			assert.NotContains(t, sql, "o.created_at <=")
		})
	}
}

func TestListPaymentsQuery_Filters(t *testing.T) {
	start := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 20, 23, 59, 59, 0, time.UTC)

	sql, args, err := listPaymentsQuery(testQueryBuilder(), port.PaymentFilter{
		SellerID:      42,
		Status:        domain.PaymentStatusCompleted,
		PaymentMethod: "bank_transfer",
		StartDate:     &start,
		EndDate:       &end,
	}).ToSql()
	assert.NoError(t, err)

	assert.Contains(t, sql, "sp.seller_id = $")
	assert.Contains(t, sql, "sp.status = $")
	assert.Contains(t, sql, "sp.payment_method = $")
	assert.Contains(t, sql, "sp.created_at >= $")
	assert.Contains(t, sql, "sp.created_at <= $")
	assert.Contains(t, args, start)
	assert.Contains(t, args, end)
}

func TestResolveItemProduct(t *testing.T) {
	productID := uint64(10)
	sellerID := uint64(3)

	tests := []struct {
		name      string
		productID *uint64
		sellerID  *uint64
		check     func(t *testing.T, got *domain.Product)
	}{
		{
			name: "missing product leaves item bare",
			check: func(t *testing.T, got *domain.Product) {
				assert.Nil(t, got)
			},
		},
		{
			name:      "missing seller leaves product without one",
			productID: &productID,
			check: func(t *testing.T, got *domain.Product) {
				assert.NotNil(t, got)
				assert.Equal(t, uint64(10), got.ID)
				assert.Nil(t, got.Seller)
			},
		},
		{
			name:      "full enrichment",
			productID: &productID,
			sellerID:  &sellerID,
			check: func(t *testing.T, got *domain.Product) {
				assert.NotNil(t, got)
				assert.NotNil(t, got.Seller)
				assert.Equal(t, uint64(3), got.Seller.ID)
				assert.Equal(t, "Ann", got.Seller.Name)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveItemProduct(tc.productID, domain.Product{Subject: "Lamp"},
				tc.sellerID, domain.User{Name: "Ann"})
			tc.check(t, got)
		})
	}
}
