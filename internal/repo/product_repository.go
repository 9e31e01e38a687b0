package repo

import (
	"context"
	"errors"

	"github.com/khatasathi/inventory-admin/internal/models"
)

// ProductRepository defines the interface for product data operations.
// Products are never removed; soft deletion is a status change.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, error)
	GetBySKU(ctx context.Context, sku string) (models.Product, error)
	Update(ctx context.Context, product models.Product) (models.Product, error)
	SetStatus(ctx context.Context, id string, status models.Status) error
	BulkSetStatus(ctx context.Context, ids []string, status models.Status) (int, error)
	Filter(ctx context.Context, pf ProductFilter) ([]models.Product, int, error)
	Meta(ctx context.Context) (ProductMeta, error)
}

// ProductMeta lists the distinct brands and categories in the catalog.
type ProductMeta struct {
	Brands     []string `json:"brands"`
	Categories []string `json:"categories"`
}

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicatedValueUnique is returned when a unique column (sku, username) already holds the value.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
	// ErrInvalidStatus is returned for a status outside Active/Inactive.
	ErrInvalidStatus = errors.New("invalid product status")
)

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
