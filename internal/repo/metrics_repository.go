package repo

import "context"

// DashboardKPIs aggregates catalog health for the dashboard.
// Stock counts and inventory values consider Active products only.
type DashboardKPIs struct {
	TotalProducts           int     `json:"totalProducts"`
	ActiveProducts          int     `json:"activeProducts"`
	InactiveProducts        int     `json:"inactiveProducts"`
	LowStockCount           int     `json:"lowStockCount"`
	OutOfStockCount         int     `json:"outOfStockCount"`
	InventoryRetailValue    float64 `json:"inventoryRetailValue"`
	InventoryWholesaleValue float64 `json:"inventoryWholesaleValue"`
}

const (
	AlertCritical = "CRITICAL"
	AlertLow      = "LOW"
)

// StockAlert flags an active product that is low on or out of stock.
type StockAlert struct {
	ProductID         string `json:"productId"`
	Name              string `json:"name"`
	SKU               string `json:"sku"`
	Stock             int    `json:"stock"`
	LowStockThreshold int    `json:"lowStockThreshold"`
	Tag               string `json:"tag"`
}

type MetricsRepository interface {
	GetDashboardKPIs(ctx context.Context) (DashboardKPIs, error)
	GetStockAlerts(ctx context.Context, limit int) ([]StockAlert, error)
}
