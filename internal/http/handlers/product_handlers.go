package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	models "github.com/khatasathi/inventory-admin/internal/models"
	repo "github.com/khatasathi/inventory-admin/internal/repo"
	"go.uber.org/zap"
)

const (
	defaultPage     = 1
	defaultPageSize = 6
	maxPageSize     = 100
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 409 {string} string "SKU already exists"
// @Router /api/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	req = normalizeProduct(req)
	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		respondJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := productRepo.Create(r.Context(), req.Product(""))
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "SKU already exists", http.StatusConflict)
			return
		}
		zap.L().Error("create product", zap.Error(err))
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	invalidateMeta(r.Context())
	respondJSON(w, http.StatusCreated, newProductResponse(created))
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, newProductResponse(product))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "SKU already exists"
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id} [put]
// @Security BearerAuth
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	req = normalizeProduct(req)
	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		respondJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := productRepo.Update(r.Context(), req.Product(id))
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrDuplicatedValueUnique):
			http.Error(w, "SKU already exists", http.StatusConflict)
		default:
			zap.L().Error("update product", zap.String("id", id), zap.Error(err))
			http.Error(w, "could not update product", http.StatusInternalServerError)
		}
		return
	}

	invalidateMeta(r.Context())
	respondJSON(w, http.StatusOK, newProductResponse(updated))
}

func parseIntPtr(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseProductFilter reads the list criteria shared by the list and export endpoints.
// Paging is applied only when withPaging is set.
func parseProductFilter(q url.Values, withPaging bool) (repo.ProductFilter, error) {
	filter := repo.ProductFilter{
		Query:    strings.TrimSpace(q.Get("q")),
		Brand:    strings.TrimSpace(q.Get("brand")),
		Category: strings.TrimSpace(q.Get("category")),
	}

	switch s := strings.ToLower(q.Get("stockStatus")); s {
	case "", "all":
	case "in", "low", "out":
		filter.StockStatus = s
	default:
		return filter, fmt.Errorf("stockStatus must be one of all, in, low, out")
	}

	switch strings.ToLower(q.Get("status")) {
	case "", "all":
	case "active":
		st := models.StatusActive
		filter.Status = &st
	case "inactive":
		st := models.StatusInactive
		filter.Status = &st
	default:
		return filter, fmt.Errorf("status must be one of all, active, inactive")
	}

	if raw := q.Get("lowOnly"); raw != "" {
		lowOnly, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, fmt.Errorf("lowOnly must be a boolean")
		}
		filter.LowOnly = lowOnly
	}

	if !withPaging {
		return filter, nil
	}

	page, err := parseIntPtr(q.Get("page"))
	if err != nil || (page != nil && *page < 1) {
		return filter, fmt.Errorf("page must be a positive integer")
	}
	pageSize, err := parseIntPtr(q.Get("pageSize"))
	if err != nil || (pageSize != nil && *pageSize < 1) {
		return filter, fmt.Errorf("pageSize must be a positive integer")
	}

	p, size := defaultPage, defaultPageSize
	if page != nil {
		p = *page
	}
	if pageSize != nil {
		size = min(*pageSize, maxPageSize)
	}
	offset := (p - 1) * size
	filter.Offset = &offset
	filter.Limit = &size
	return filter, nil
}

// ListProductsHandler godoc
// @Summary Filter and paginate products
// @Tags products
// @Produce json
// @Param q query string false "Matches name, SKU or barcode"
// @Param brand query string false "Exact brand"
// @Param category query string false "Exact category"
// @Param stockStatus query string false "all|in|low|out"
// @Param status query string false "all|active|inactive"
// @Param lowOnly query bool false "Only low or out of stock"
// @Param page query int false "Page number, starting at 1"
// @Param pageSize query int false "Items per page"
// @Success 200 {object} ProductsPage
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /api/products [get]
func ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r.URL.Query(), true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	products, total, err := productRepo.Filter(r.Context(), filter)
	if err != nil {
		zap.L().Error("filter products", zap.Error(err))
		http.Error(w, "could not filter products", http.StatusInternalServerError)
		return
	}

	resp := ProductsPage{
		Items: make([]ProductResponse, len(products)),
		Total: total,
	}
	for i, p := range products {
		resp.Items[i] = newProductResponse(p)
	}
	respondJSON(w, http.StatusOK, resp)
}

// ProductsMetaHandler godoc
// @Summary Distinct brands and categories
// @Tags products
// @Produce json
// @Success 200 {object} repo.ProductMeta
// @Failure 500 {string} string "Internal error"
// @Router /api/products/meta [get]
func ProductsMetaHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var meta repo.ProductMeta
	if metaCache != nil {
		hit, err := metaCache.Get(ctx, &meta)
		switch {
		case err != nil:
			metaCacheLookups.WithLabelValues("error").Inc()
			zap.L().Warn("meta cache read failed", zap.Error(err))
		case hit:
			metaCacheLookups.WithLabelValues("hit").Inc()
			respondJSON(w, http.StatusOK, meta)
			return
		default:
			metaCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	meta, err := productRepo.Meta(ctx)
	if err != nil {
		http.Error(w, "could not fetch product meta", http.StatusInternalServerError)
		return
	}

	if metaCache != nil {
		if err := metaCache.Set(ctx, meta); err != nil {
			zap.L().Warn("meta cache write failed", zap.Error(err))
		}
	}
	respondJSON(w, http.StatusOK, meta)
}

func invalidateMeta(ctx context.Context) {
	if metaCache == nil {
		return
	}
	if err := metaCache.Invalidate(ctx); err != nil {
		zap.L().Warn("meta cache invalidation failed", zap.Error(err))
	}
}
