package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"github.com/khatasathi/inventory-admin/internal/client"
	"github.com/khatasathi/inventory-admin/internal/models"
)

type statusCall struct {
	id     string
	status models.Status
}

type bulkCall struct {
	ids    []string
	status models.Status
}

// fakeAPI serves products from memory, filtering by brand and status only.
type fakeAPI struct {
	mu       sync.Mutex
	products []models.Product
	meta     client.ProductsMeta

	metaErr, listErr, createErr, updateErr, statusErr, bulkErr error

	queries     []client.ProductsQuery
	created     []models.ProductInput
	updated     map[string]models.ProductInput
	statusCalls []statusCall
	bulkCalls   []bulkCall

	// onList runs before a list response is returned.
	onList func(call int)
}

func newFakeAPI(n int) *fakeAPI {
	f := &fakeAPI{
		meta:    client.ProductsMeta{Brands: []string{"Acme", "Zen"}, Categories: []string{"Grains", "Snacks"}},
		updated: map[string]models.ProductInput{},
	}
	for i := 1; i <= n; i++ {
		brand := "Acme"
		if i%2 == 0 {
			brand = "Zen"
		}
		f.products = append(f.products, models.Product{
			ID:                fmt.Sprintf("p%02d", i),
			Name:              fmt.Sprintf("Product %02d", i),
			SKU:               fmt.Sprintf("SKU-%02d", i),
			Brand:             brand,
			Category:          "Grains",
			Stock:             i,
			LowStockThreshold: 5,
			Status:            models.StatusActive,
		})
	}
	return f
}

func (f *fakeAPI) ListProducts(_ context.Context, q client.ProductsQuery) (client.ProductPage, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	call := len(f.queries)
	hook := f.onList
	err := f.listErr
	var matched []models.Product
	for _, p := range f.products {
		if q.Brand != "" && q.Brand != client.AllBrands && p.Brand != q.Brand {
			continue
		}
		if q.Status == "active" && p.Status != models.StatusActive {
			continue
		}
		if q.Status == "inactive" && p.Status != models.StatusInactive {
			continue
		}
		matched = append(matched, p)
	}
	f.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	if err != nil {
		return client.ProductPage{}, err
	}

	start := min((q.Page-1)*q.PageSize, len(matched))
	end := min(start+q.PageSize, len(matched))
	return client.ProductPage{Items: matched[start:end], Total: len(matched)}, nil
}

func (f *fakeAPI) ProductsMeta(context.Context) (client.ProductsMeta, error) {
	return f.meta, f.metaErr
}

func (f *fakeAPI) CreateProduct(_ context.Context, in models.ProductInput) (models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, in)
	if f.createErr != nil {
		return models.Product{}, f.createErr
	}
	p := in.Product(fmt.Sprintf("new%d", len(f.created)))
	f.products = append(f.products, p)
	return p, nil
}

func (f *fakeAPI) UpdateProduct(_ context.Context, id string, in models.ProductInput) (models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated[id] = in
	if f.updateErr != nil {
		return models.Product{}, f.updateErr
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i] = in.Product(id)
			return f.products[i], nil
		}
	}
	return models.Product{}, &client.RequestError{Status: 404, Message: "product not found"}
}

func (f *fakeAPI) SetProductStatus(_ context.Context, id string, status models.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls = append(f.statusCalls, statusCall{id: id, status: status})
	if f.statusErr != nil {
		return f.statusErr
	}
	f.setStatus(id, status)
	return nil
}

func (f *fakeAPI) BulkSetStatus(_ context.Context, ids []string, status models.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bulkCalls = append(f.bulkCalls, bulkCall{ids: ids, status: status})
	if f.bulkErr != nil {
		return f.bulkErr
	}
	for _, id := range ids {
		f.setStatus(id, status)
	}
	return nil
}

func (f *fakeAPI) setStatus(id string, status models.Status) {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Status = status
		}
	}
}

func (f *fakeAPI) lastQuery() client.ProductsQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

func (f *fakeAPI) listCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}
