package service

import (
	"context"
	"errors"
	"time"

	"github.com/mkalinin/shopadmin/internal/core/domain"
	"github.com/mkalinin/shopadmin/internal/core/port"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const recentOrdersLimit = 5

type Service struct {
	repo   port.Repository
	cache  port.StatsCache
	logger *zap.Logger
}

// NewService wires the admin operations. cache may be nil, in which case
// dashboard statistics are computed on every call.
func NewService(repo port.Repository, cache port.StatsCache, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}, nil
}

// ListUnpaidOrders returns orders still owed a seller payout, newest first.
// An order is owed while at least one of its line items has no recorded
// payment; a fully settled order never resurfaces.
func (s *Service) ListUnpaidOrders(ctx context.Context, filter port.OrderFilter) ([]*domain.Order, error) {
	if filter.PaymentStatus == "" {
		filter.PaymentStatus = domain.PaymentStatusCompleted
	}

	keys, err := s.repo.ListPaymentKeys(ctx)
	if err != nil {
		s.logger.Error("List payment keys", zap.Error(err))
		return nil, domain.ErrInternal
	}
	paid := make(map[domain.PaymentKey]struct{}, len(keys))
	for _, key := range keys {
		paid[key] = struct{}{}
	}

	orders, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, domain.ErrInternal
	}

	unpaid := make([]*domain.Order, 0, len(orders))
	for _, order := range orders {
		if orderFullyPaid(order, paid) {
			continue
		}
		unpaid = append(unpaid, order)
	}

	return unpaid, nil
}

func orderFullyPaid(order *domain.Order, paid map[domain.PaymentKey]struct{}) bool {
	if len(order.Items) == 0 {
		return false
	}
	for _, item := range order.Items {
		key := domain.PaymentKey{OrderID: order.ID, ProductID: item.ProductID}
		if _, ok := paid[key]; !ok {
			return false
		}
	}
	return true
}

// UpdateOrder applies a partial update: only the fields set on update change.
// Status transitions are not validated.
func (s *Service) UpdateOrder(ctx context.Context, orderID uint64, update port.OrderUpdate) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if update.Status != nil {
		order.Status = *update.Status
	}
	if update.PaymentStatus != nil {
		order.PaymentStatus = *update.PaymentStatus
	}
	if update.Notes != nil {
		order.Notes = *update.Notes
	}

	updated, err := s.repo.UpdateOrder(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Update order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return updated, nil
}

// ProcessSellerPayment records one payout against one line item of an order.
// The seller is taken from the matched line item's product. The ledger keeps
// at most one payment per (order, product) pair; a duplicate surfaces as
// domain.ErrPaymentDuplicate.
func (s *Service) ProcessSellerPayment(ctx context.Context, input port.PaymentInput) (*domain.SellerPayment, error) {
	if input.ProductID == 0 || input.PaymentMethod == "" || input.Amount.Sign() <= 0 {
		return nil, domain.ErrPaymentFieldsMissing
	}

	order, err := s.repo.ReadOrder(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	var item *domain.OrderItem
	for i := range order.Items {
		if order.Items[i].ProductID == input.ProductID && order.Items[i].Product != nil {
			item = &order.Items[i]
			break
		}
	}
	if item == nil {
		return nil, domain.ErrProductNotInOrder
	}

	payment := &domain.SellerPayment{
		SellerID:      item.Product.SellerID,
		OrderID:       input.OrderID,
		ProductID:     input.ProductID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Status:        domain.PaymentStatusCompleted,
		ProcessedByID: input.ProcessedByID,
		Notes:         input.Notes,
		CreatedAt:     time.Now(),
	}

	created, err := s.repo.CreatePayment(ctx, payment)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrPaymentDuplicate
		}
		s.logger.Error("Create payment", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return created, nil
}

// ListSellerPayments returns the filtered payment history together with the
// full user list.
func (s *Service) ListSellerPayments(ctx context.Context, filter port.PaymentFilter) (*port.SellerPaymentsReport, error) {
	payments, err := s.repo.ListPayments(ctx, filter)
	if err != nil {
		s.logger.Error("List payments", zap.Error(err))
		return nil, domain.ErrInternal
	}

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		s.logger.Error("List users", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return &port.SellerPaymentsReport{Payments: payments, Users: users}, nil
}

// DashboardStats issues the report facets as concurrent independent queries
// and merges them. The facets share no state and give no point-in-time
// snapshot; any facet failure fails the whole report.
func (s *Service) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	if s.cache != nil {
		stats, err := s.cache.ReadStats(ctx)
		if err == nil {
			return stats, nil
		}
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Warn("Read stats cache", zap.Error(err))
		}
	}

	stats := &domain.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.repo.CountOrders(gctx)
		if err != nil {
			return err
		}
		stats.Counts.Orders = count
		return nil
	})
	g.Go(func() error {
		count, err := s.repo.CountUsers(gctx)
		if err != nil {
			return err
		}
		stats.Counts.Users = count
		return nil
	})
	g.Go(func() error {
		count, err := s.repo.CountProducts(gctx)
		if err != nil {
			return err
		}
		stats.Counts.Products = count
		return nil
	})
	g.Go(func() error {
		counts, err := s.repo.CountOrdersByStatus(gctx)
		if err != nil {
			return err
		}
		stats.OrdersByStatus = statusHistogram(counts)
		return nil
	})
	g.Go(func() error {
		recent, err := s.repo.ListRecentOrders(gctx, recentOrdersLimit)
		if err != nil {
			return err
		}
		stats.RecentOrders = recent
		return nil
	})
	g.Go(func() error {
		revenue, err := s.repo.TotalRevenue(gctx)
		if err != nil {
			return err
		}
		stats.Counts.Revenue = revenue
		return nil
	})
	g.Go(func() error {
		sales, err := s.repo.MonthlySales(gctx)
		if err != nil {
			return err
		}
		stats.MonthlySales = sales
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Dashboard stats", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if s.cache != nil {
		if err := s.cache.StoreStats(ctx, stats); err != nil {
			s.logger.Warn("Store stats cache", zap.Error(err))
		}
	}

	return stats, nil
}

// statusHistogram fixes the histogram to the known statuses. Unknown values
// in the data are dropped.
func statusHistogram(counts map[domain.OrderStatus]int64) domain.StatusCounts {
	var hist domain.StatusCounts
	for status, count := range counts {
		switch status {
		case domain.OrderStatusProcessing:
			hist.Processing = count
		case domain.OrderStatusShipped:
			hist.Shipped = count
		case domain.OrderStatusDelivered:
			hist.Delivered = count
		case domain.OrderStatusCancelled:
			hist.Cancelled = count
		}
	}
	return hist
}
