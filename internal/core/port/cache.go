package port

import (
	"context"

	"github.com/mkalinin/shopadmin/internal/core/domain"
)

//go:generate mockgen -source=cache.go -destination=mock/cache.go -package=mock
type StatsCache interface {
	// ReadStats returns domain.ErrDataNotFound on a cache miss.
	ReadStats(ctx context.Context) (*domain.DashboardStats, error)
	StoreStats(ctx context.Context, stats *domain.DashboardStats) error
}
