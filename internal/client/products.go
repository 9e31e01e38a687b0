package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/khatasathi/inventory-admin/internal/models"
)

const (
	AllBrands     = "All Brands"
	AllCategories = "All Categories"
)

// ProductsQuery holds list criteria. Values at their no-op setting are left
// out of the request.
type ProductsQuery struct {
	Q           string
	Brand       string
	Category    string
	StockStatus string
	Status      string
	LowOnly     bool
	Page        int
	PageSize    int
}

func (q ProductsQuery) Values() url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(q.Q); s != "" {
		v.Set("q", s)
	}
	if q.Brand != "" && q.Brand != AllBrands {
		v.Set("brand", q.Brand)
	}
	if q.Category != "" && q.Category != AllCategories {
		v.Set("category", q.Category)
	}
	if q.StockStatus != "" && q.StockStatus != "all" {
		v.Set("stockStatus", q.StockStatus)
	}
	if q.Status != "" && q.Status != "all" {
		v.Set("status", q.Status)
	}
	if q.LowOnly {
		v.Set("lowOnly", "true")
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	return v
}

type ProductPage struct {
	Items []models.Product `json:"items"`
	Total int              `json:"total"`
}

type ProductsMeta struct {
	Brands     []string `json:"brands"`
	Categories []string `json:"categories"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type DashboardKPIs struct {
	TotalProducts           int     `json:"totalProducts"`
	ActiveProducts          int     `json:"activeProducts"`
	InactiveProducts        int     `json:"inactiveProducts"`
	LowStockCount           int     `json:"lowStockCount"`
	OutOfStockCount         int     `json:"outOfStockCount"`
	InventoryRetailValue    float64 `json:"inventoryRetailValue"`
	InventoryWholesaleValue float64 `json:"inventoryWholesaleValue"`
}

type StockAlert struct {
	ProductID         string `json:"productId"`
	Name              string `json:"name"`
	SKU               string `json:"sku"`
	Stock             int    `json:"stock"`
	LowStockThreshold int    `json:"lowStockThreshold"`
	Tag               string `json:"tag"`
}

func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var out HealthStatus
	err := c.do(ctx, http.MethodGet, "/api/health", nil, nil, &out)
	return out, err
}

// Login exchanges credentials for a token and keeps it for later calls.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, body, &out); err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}

func (c *Client) ListProducts(ctx context.Context, q ProductsQuery) (ProductPage, error) {
	var out ProductPage
	err := c.do(ctx, http.MethodGet, "/api/products", q.Values(), nil, &out)
	if out.Items == nil {
		out.Items = []models.Product{}
	}
	return out, err
}

func (c *Client) ProductsMeta(ctx context.Context) (ProductsMeta, error) {
	var out ProductsMeta
	err := c.do(ctx, http.MethodGet, "/api/products/meta", nil, nil, &out)
	return out, err
}

func (c *Client) GetProduct(ctx context.Context, id string) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, http.MethodGet, productPath(id), nil, nil, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, in models.ProductInput) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, http.MethodPost, "/api/products", nil, in, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in models.ProductInput) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, http.MethodPut, productPath(id), nil, in, &out)
	return out, err
}

func (c *Client) SetProductStatus(ctx context.Context, id string, status models.Status) error {
	body := map[string]models.Status{"status": status}
	return c.do(ctx, http.MethodPatch, productPath(id, "status"), nil, body, nil)
}

func (c *Client) BulkSetStatus(ctx context.Context, ids []string, status models.Status) error {
	body := struct {
		IDs    []string      `json:"ids"`
		Status models.Status `json:"status"`
	}{IDs: ids, Status: status}
	return c.do(ctx, http.MethodPost, "/api/products/bulk-status", nil, body, nil)
}

func (c *Client) DashboardKPIs(ctx context.Context) (DashboardKPIs, error) {
	var out DashboardKPIs
	err := c.do(ctx, http.MethodGet, "/api/dashboard/kpis", nil, nil, &out)
	return out, err
}

func (c *Client) StockAlerts(ctx context.Context, limit int) ([]StockAlert, error) {
	var q url.Values
	if limit > 0 {
		q = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	out := []StockAlert{}
	err := c.do(ctx, http.MethodGet, "/api/dashboard/alerts", q, nil, &out)
	return out, err
}
