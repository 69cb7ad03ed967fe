package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/mkalinin/shopadmin/internal/core/domain"
	"github.com/mkalinin/shopadmin/internal/core/port"
	"github.com/mkalinin/shopadmin/internal/core/port/mock"
	"github.com/mkalinin/shopadmin/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository)

func mustDecimal(t *testing.T, value float64) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromFloat64(value)
	assert.NoError(t, err)
	return d
}

func TestService_ListUnpaidOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	date := func(value string) time.Time {
		d, err := time.Parse("2006-01-02", value)
		assert.NoError(t, err)
		return d
	}

	orderO1 := func() *domain.Order {
		return &domain.Order{
			ID:            1,
			Status:        domain.OrderStatusShipped,
			PaymentStatus: domain.PaymentStatusCompleted,
			CreatedAt:     date("2024-03-10"),
			Items:         []domain.OrderItem{{OrderID: 1, ProductID: 11}},
		}
	}
	multiItemOrder := func() *domain.Order {
		return &domain.Order{
			ID:            2,
			PaymentStatus: domain.PaymentStatusCompleted,
			Items: []domain.OrderItem{
				{OrderID: 2, ProductID: 21},
				{OrderID: 2, ProductID: 22},
			},
		}
	}

	startDate := date("2024-03-01")
	endDate := date("2024-03-31")

	type listTest struct {
		name     string
		filter   port.OrderFilter
		mock     prepareMocks
		expError error
		expIDs   []uint64
	}

	tests := []listTest{
		{
			name:   "Unpaid order in date range",
			filter: port.OrderFilter{StartDate: &startDate, EndDate: &endDate},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ListPaymentKeys(gomock.Any()).Return([]domain.PaymentKey{}, nil)
				repo.EXPECT().ListOrders(gomock.Any(), port.OrderFilter{
					PaymentStatus: domain.PaymentStatusCompleted,
					StartDate:     &startDate,
					EndDate:       &endDate,
				}).Return([]*domain.Order{orderO1()}, nil)
			},
			expIDs: []uint64{1},
		},
		{
			name:   "Paid order excluded under any parameters",
			filter: port.OrderFilter{Status: domain.OrderStatusShipped},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ListPaymentKeys(gomock.Any()).
					Return([]domain.PaymentKey{{OrderID: 1, ProductID: 11}}, nil)
				repo.EXPECT().ListOrders(gomock.Any(), gomock.Any()).
					Return([]*domain.Order{orderO1()}, nil)
			},
			expIDs: []uint64{},
		},
		{
			name:   "Partially paid order still owed",
			filter: port.OrderFilter{},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ListPaymentKeys(gomock.Any()).
					Return([]domain.PaymentKey{{OrderID: 2, ProductID: 21}}, nil)
				repo.EXPECT().ListOrders(gomock.Any(), gomock.Any()).
					Return([]*domain.Order{multiItemOrder()}, nil)
			},
			expIDs: []uint64{2},
		},
		{
			name:   "Empty payment filter defaults to completed",
			filter: port.OrderFilter{},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ListPaymentKeys(gomock.Any()).Return([]domain.PaymentKey{}, nil)
				repo.EXPECT().ListOrders(gomock.Any(),
					port.OrderFilter{PaymentStatus: domain.PaymentStatusCompleted}).
					Return([]*domain.Order{}, nil)
			},
			expIDs: []uint64{},
		},
		{
			name:   "Explicit payment filter kept",
			filter: port.OrderFilter{PaymentStatus: domain.PaymentStatusPending},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ListPaymentKeys(gomock.Any()).Return([]domain.PaymentKey{}, nil)
				repo.EXPECT().ListOrders(gomock.Any(),
					port.OrderFilter{PaymentStatus: domain.PaymentStatusPending}).
					Return([]*domain.Order{}, nil)
			},
			expIDs: []uint64{},
		},
		{
			name:   "Store failure",
			filter: port.OrderFilter{},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ListPaymentKeys(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, nil, logger)
			assert.NoError(t, err)

			result, err := s.ListUnpaidOrders(context.Background(), test.filter)

			assert.Equal(t, test.expError, err)
			if test.expError != nil {
				return
			}

			ids := make([]uint64, 0, len(result))
			for _, order := range result {
				ids = append(ids, order.ID)
			}
			assert.Equal(t, test.expIDs, ids)
		})
	}
}

func TestService_UpdateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	stored := func() *domain.Order {
		return &domain.Order{
			ID:            1,
			Status:        domain.OrderStatusProcessing,
			PaymentStatus: domain.PaymentStatusPending,
			Notes:         "keep me",
		}
	}

	shipped := domain.OrderStatusShipped
	completed := domain.PaymentStatusCompleted
	newNotes := "called the courier"

	type updateTest struct {
		name     string
		orderID  uint64
		update   port.OrderUpdate
		mock     prepareMocks
		expError error
		check    func(t *testing.T, order *domain.Order)
	}

	tests := []updateTest{
		{
			name:    "Status only, other fields untouched",
			orderID: 1,
			update:  port.OrderUpdate{Status: &shipped},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).Return(stored(), nil)
				repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
						return order, nil
					})
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, domain.OrderStatusShipped, order.Status)
				assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
				assert.Equal(t, "keep me", order.Notes)
			},
		},
		{
			name:    "All fields",
			orderID: 1,
			update:  port.OrderUpdate{Status: &shipped, PaymentStatus: &completed, Notes: &newNotes},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).Return(stored(), nil)
				repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
						return order, nil
					})
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, domain.OrderStatusShipped, order.Status)
				assert.Equal(t, domain.PaymentStatusCompleted, order.PaymentStatus)
				assert.Equal(t, "called the courier", order.Notes)
			},
		},
		{
			name:    "Order not found",
			orderID: 42,
			update:  port.OrderUpdate{Status: &shipped},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(42)).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrOrderNotFound,
		},
		{
			name:    "Order deleted between read and write",
			orderID: 1,
			update:  port.OrderUpdate{Status: &shipped},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).Return(stored(), nil)
				repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrOrderNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, nil, logger)
			assert.NoError(t, err)

			order, err := s.UpdateOrder(context.Background(), test.orderID, test.update)

			assert.Equal(t, test.expError, err)
			if test.check != nil {
				test.check(t, order)
			}
		})
	}
}

func TestService_ProcessSellerPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	orderWithItem := func() *domain.Order {
		return &domain.Order{
			ID:            1,
			PaymentStatus: domain.PaymentStatusCompleted,
			Items: []domain.OrderItem{
				{
					OrderID:   1,
					ProductID: 11,
					Product:   &domain.Product{ID: 11, SellerID: 7},
				},
			},
		}
	}

	type paymentTest struct {
		name     string
		input    port.PaymentInput
		mock     prepareMocks
		expError error
		check    func(t *testing.T, payment *domain.SellerPayment)
	}

	amount := mustDecimal(t, 100)

	tests := []paymentTest{
		{
			name: "Payment recorded",
			input: port.PaymentInput{
				OrderID:       1,
				ProductID:     11,
				PaymentMethod: "bank_transfer",
				Amount:        amount,
				ProcessedByID: 99,
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).Return(orderWithItem(), nil)
				repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, payment *domain.SellerPayment) (*domain.SellerPayment, error) {
						payment.ID = 1001
						return payment, nil
					})
			},
			check: func(t *testing.T, payment *domain.SellerPayment) {
				assert.Equal(t, uint64(1001), payment.ID)
				assert.Equal(t, uint64(7), payment.SellerID)
				assert.Equal(t, uint64(1), payment.OrderID)
				assert.Equal(t, uint64(11), payment.ProductID)
				assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
				assert.Equal(t, uint64(99), payment.ProcessedByID)
				assert.False(t, payment.CreatedAt.IsZero())
			},
		},
		{
			name: "Missing product id",
			input: port.PaymentInput{
				OrderID:       1,
				PaymentMethod: "bank_transfer",
				Amount:        amount,
			},
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrPaymentFieldsMissing,
		},
		{
			name: "Missing payment method",
			input: port.PaymentInput{
				OrderID:   1,
				ProductID: 11,
				Amount:    amount,
			},
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrPaymentFieldsMissing,
		},
		{
			name: "Missing amount",
			input: port.PaymentInput{
				OrderID:       1,
				ProductID:     11,
				PaymentMethod: "bank_transfer",
			},
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrPaymentFieldsMissing,
		},
		{
			name: "Order not found",
			input: port.PaymentInput{
				OrderID:       42,
				ProductID:     11,
				PaymentMethod: "bank_transfer",
				Amount:        amount,
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(42)).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrOrderNotFound,
		},
		{
			name: "Product not in order",
			input: port.PaymentInput{
				OrderID:       1,
				ProductID:     12,
				PaymentMethod: "bank_transfer",
				Amount:        amount,
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).Return(orderWithItem(), nil)
			},
			expError: domain.ErrProductNotInOrder,
		},
		{
			name: "Duplicate payment",
			input: port.PaymentInput{
				OrderID:       1,
				ProductID:     11,
				PaymentMethod: "bank_transfer",
				Amount:        amount,
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).Return(orderWithItem(), nil)
				repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrConflictingData)
			},
			expError: domain.ErrPaymentDuplicate,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, nil, logger)
			assert.NoError(t, err)

			payment, err := s.ProcessSellerPayment(context.Background(), test.input)

			assert.Equal(t, test.expError, err)
			if test.check != nil {
				test.check(t, payment)
			}
		})
	}
}

func TestService_ListSellerPayments(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	payments := []*domain.SellerPayment{{ID: 1, SellerID: 7}}
	users := []*domain.User{{ID: 7, Name: "seller"}, {ID: 99, Name: "admin"}}

	t.Run("Payments and users in one report", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		filter := port.PaymentFilter{SellerID: 7}
		repo.EXPECT().ListPayments(gomock.Any(), filter).Return(payments, nil)
		repo.EXPECT().ListUsers(gomock.Any()).Return(users, nil)

		s, err := service.NewService(repo, nil, logger)
		assert.NoError(t, err)

		report, err := s.ListSellerPayments(context.Background(), filter)
		assert.NoError(t, err)
		assert.Equal(t, payments, report.Payments)
		assert.Equal(t, users, report.Users)
	})

	t.Run("Store failure", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().ListPayments(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		s, err := service.NewService(repo, nil, logger)
		assert.NoError(t, err)

		_, err = s.ListSellerPayments(context.Background(), port.PaymentFilter{})
		assert.Equal(t, domain.ErrInternal, err)
	})
}

func TestService_DashboardStats(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	t.Run("Facets merged", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().CountOrders(gomock.Any()).Return(int64(3), nil)
		repo.EXPECT().CountUsers(gomock.Any()).Return(int64(2), nil)
		repo.EXPECT().CountProducts(gomock.Any()).Return(int64(4), nil)
		repo.EXPECT().CountOrdersByStatus(gomock.Any()).Return(map[domain.OrderStatus]int64{
			domain.OrderStatusProcessing: 1,
			domain.OrderStatusShipped:    2,
			"weird":                      5,
		}, nil)
		repo.EXPECT().ListRecentOrders(gomock.Any(), uint64(5)).
			Return([]domain.RecentOrder{{ID: 3, UserName: "alice"}}, nil)
		repo.EXPECT().TotalRevenue(gomock.Any()).Return(mustDecimal(t, 60), nil)
		repo.EXPECT().MonthlySales(gomock.Any()).Return([]domain.MonthlySales{
			{Year: 2024, Month: 3, Count: 3, Total: mustDecimal(t, 60)},
		}, nil)

		s, err := service.NewService(repo, nil, logger)
		assert.NoError(t, err)

		stats, err := s.DashboardStats(context.Background())
		assert.NoError(t, err)

		assert.Equal(t, int64(3), stats.Counts.Orders)
		assert.Equal(t, int64(2), stats.Counts.Users)
		assert.Equal(t, int64(4), stats.Counts.Products)
		assert.Equal(t, mustDecimal(t, 60), stats.Counts.Revenue)

		// unknown statuses are dropped, absent ones stay at zero
		assert.Equal(t, domain.StatusCounts{Processing: 1, Shipped: 2}, stats.OrdersByStatus)

		assert.Len(t, stats.RecentOrders, 1)
		assert.Equal(t, "alice", stats.RecentOrders[0].UserName)

		assert.Equal(t, []domain.MonthlySales{
			{Year: 2024, Month: 3, Count: 3, Total: mustDecimal(t, 60)},
		}, stats.MonthlySales)
	})

	t.Run("Empty store reports zero revenue", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().CountOrders(gomock.Any()).Return(int64(0), nil)
		repo.EXPECT().CountUsers(gomock.Any()).Return(int64(0), nil)
		repo.EXPECT().CountProducts(gomock.Any()).Return(int64(0), nil)
		repo.EXPECT().CountOrdersByStatus(gomock.Any()).
			Return(map[domain.OrderStatus]int64{}, nil)
		repo.EXPECT().ListRecentOrders(gomock.Any(), uint64(5)).
			Return([]domain.RecentOrder{}, nil)
		repo.EXPECT().TotalRevenue(gomock.Any()).Return(decimal.Zero, nil)
		repo.EXPECT().MonthlySales(gomock.Any()).Return([]domain.MonthlySales{}, nil)

		s, err := service.NewService(repo, nil, logger)
		assert.NoError(t, err)

		stats, err := s.DashboardStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, decimal.Zero, stats.Counts.Revenue)
		assert.Equal(t, domain.StatusCounts{}, stats.OrdersByStatus)
	})

	t.Run("Facet failure fails whole report", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().CountOrders(gomock.Any()).Return(int64(3), nil).AnyTimes()
		repo.EXPECT().CountUsers(gomock.Any()).Return(int64(2), nil).AnyTimes()
		repo.EXPECT().CountProducts(gomock.Any()).Return(int64(4), nil).AnyTimes()
		repo.EXPECT().CountOrdersByStatus(gomock.Any()).
			Return(map[domain.OrderStatus]int64{}, nil).AnyTimes()
		repo.EXPECT().ListRecentOrders(gomock.Any(), uint64(5)).
			Return([]domain.RecentOrder{}, nil).AnyTimes()
		repo.EXPECT().TotalRevenue(gomock.Any()).
			Return(decimal.Zero, errors.New("connection refused"))
		repo.EXPECT().MonthlySales(gomock.Any()).Return([]domain.MonthlySales{}, nil).AnyTimes()

		s, err := service.NewService(repo, nil, logger)
		assert.NoError(t, err)

		_, err = s.DashboardStats(context.Background())
		assert.Equal(t, domain.ErrInternal, err)
	})

	t.Run("Cache hit skips the queries", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		statsCache := mock.NewMockStatsCache(mockCtrl)

		cached := &domain.DashboardStats{Counts: domain.DashboardCounts{Orders: 10}}
		statsCache.EXPECT().ReadStats(gomock.Any()).Return(cached, nil)

		s, err := service.NewService(repo, statsCache, logger)
		assert.NoError(t, err)

		stats, err := s.DashboardStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, cached, stats)
	})

	t.Run("Cache miss computes and stores", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		statsCache := mock.NewMockStatsCache(mockCtrl)

		statsCache.EXPECT().ReadStats(gomock.Any()).Return(nil, domain.ErrDataNotFound)
		repo.EXPECT().CountOrders(gomock.Any()).Return(int64(1), nil)
		repo.EXPECT().CountUsers(gomock.Any()).Return(int64(1), nil)
		repo.EXPECT().CountProducts(gomock.Any()).Return(int64(1), nil)
		repo.EXPECT().CountOrdersByStatus(gomock.Any()).
			Return(map[domain.OrderStatus]int64{}, nil)
		repo.EXPECT().ListRecentOrders(gomock.Any(), uint64(5)).
			Return([]domain.RecentOrder{}, nil)
		repo.EXPECT().TotalRevenue(gomock.Any()).Return(decimal.Zero, nil)
		repo.EXPECT().MonthlySales(gomock.Any()).Return([]domain.MonthlySales{}, nil)
		statsCache.EXPECT().StoreStats(gomock.Any(), gomock.Any()).Return(nil)

		s, err := service.NewService(repo, statsCache, logger)
		assert.NoError(t, err)

		stats, err := s.DashboardStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(1), stats.Counts.Orders)
	})
}
