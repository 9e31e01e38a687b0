package repo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/khatasathi/inventory-admin/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Filter returns one page of matching products ordered by name, plus the total match count.
func (r *InMemoryProductRepository) Filter(_ context.Context, pf ProductFilter) ([]models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Product{}
	for _, p := range r.products {
		if matchesFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Name != filtered[j].Name {
			return filtered[i].Name < filtered[j].Name
		}
		return filtered[i].ID < filtered[j].ID
	})

	total := len(filtered)
	start := 0
	if pf.Offset != nil {
		start = clamp(*pf.Offset, 0, total)
	}

	end := total
	if pf.Limit != nil && *pf.Limit > 0 {
		end = clamp(start+*pf.Limit, start, total)
	}

	return filtered[start:end], total, nil
}

// Create adds a new product to the repository and assigns its id.
func (r *InMemoryProductRepository) Create(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if strings.EqualFold(p.SKU, product.SKU) {
			return models.Product{}, ErrDuplicatedValueUnique
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	product.ID = uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products = append(r.products, product)
	return product, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(_ context.Context, id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetBySKU retrieves a product by its SKU, ignoring case.
func (r *InMemoryProductRepository) GetBySKU(_ context.Context, sku string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if strings.EqualFold(p.SKU, sku) {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update replaces the writable fields of an existing product.
func (r *InMemoryProductRepository) Update(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, p := range r.products {
		if p.ID == product.ID {
			idx = i
			continue
		}
		if strings.EqualFold(p.SKU, product.SKU) {
			return models.Product{}, ErrDuplicatedValueUnique
		}
	}
	if idx < 0 {
		return models.Product{}, ErrProductNotFound
	}

	product.CreatedAt = r.products[idx].CreatedAt
	product.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	r.products[idx] = product
	return product, nil
}

// SetStatus changes the status of a single product.
func (r *InMemoryProductRepository) SetStatus(_ context.Context, id string, status models.Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products[i].Status = status
			r.products[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			return nil
		}
	}
	return ErrProductNotFound
}

// BulkSetStatus changes the status of every listed product, or of none if any id is unknown.
func (r *InMemoryProductRepository) BulkSetStatus(_ context.Context, ids []string, status models.Status) (int, error) {
	if !status.Valid() {
		return 0, ErrInvalidStatus
	}
	ids = dedupe(ids)

	r.mu.Lock()
	defer r.mu.Unlock()

	index := make(map[string]int, len(r.products))
	for i, p := range r.products {
		index[p.ID] = i
	}
	for _, id := range ids {
		if _, ok := index[id]; !ok {
			return 0, ErrProductNotFound
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, id := range ids {
		r.products[index[id]].Status = status
		r.products[index[id]].UpdatedAt = now
	}
	return len(ids), nil
}

// Meta returns the sorted distinct brands and categories.
func (r *InMemoryProductRepository) Meta(_ context.Context) (ProductMeta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	brands := map[string]struct{}{}
	categories := map[string]struct{}{}
	for _, p := range r.products {
		if p.Brand != "" {
			brands[p.Brand] = struct{}{}
		}
		if p.Category != "" {
			categories[p.Category] = struct{}{}
		}
	}
	return ProductMeta{Brands: sortedKeys(brands), Categories: sortedKeys(categories)}, nil
}

// All returns a copy of every stored product.
func (r *InMemoryProductRepository) All() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
