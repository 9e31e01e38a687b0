package handlers

import (
	"context"

	repo "github.com/khatasathi/inventory-admin/internal/repo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetaCache caches the brand/category listing. A nil cache disables caching.
type MetaCache interface {
	Get(ctx context.Context, dest any) (bool, error)
	Set(ctx context.Context, value any) error
	Invalidate(ctx context.Context) error
}

var (
	productRepo repo.ProductRepository
	metricsRepo repo.MetricsRepository
	userRepo    repo.UserRepository
	metaCache   MetaCache
)

var metaCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "khatasathi_meta_cache_lookups_total",
	Help: "Product meta cache lookups by result (hit, miss, error).",
}, []string{"result"})

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetMetaCache(c MetaCache) {
	metaCache = c
}
