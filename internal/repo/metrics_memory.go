package repo

import (
	"context"
	"sort"

	"github.com/khatasathi/inventory-admin/internal/models"
)

type InMemoryMetricsRepository struct {
	productRepo *InMemoryProductRepository
}

func NewInMemoryMetricsRepository(productRepo *InMemoryProductRepository) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{productRepo: productRepo}
}

// GetDashboardKPIs implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardKPIs(_ context.Context) (DashboardKPIs, error) {
	m := DashboardKPIs{}
	for _, p := range i.productRepo.All() {
		m.TotalProducts++
		if p.Status != models.StatusActive {
			m.InactiveProducts++
			continue
		}
		m.ActiveProducts++
		switch p.StockFlag() {
		case models.LowStock:
			m.LowStockCount++
		case models.OutOfStock:
			m.OutOfStockCount++
		}
		if p.Stock > 0 {
			m.InventoryRetailValue += p.RetailPrice * float64(p.Stock)
			m.InventoryWholesaleValue += p.WholesalePrice * float64(p.Stock)
		}
	}
	return m, nil
}

// GetStockAlerts implements MetricsRepository. Out-of-stock alerts come first, then lowest stock.
func (i *InMemoryMetricsRepository) GetStockAlerts(_ context.Context, limit int) ([]StockAlert, error) {
	alerts := []StockAlert{}
	for _, p := range i.productRepo.All() {
		if p.Status != models.StatusActive {
			continue
		}
		var tag string
		switch p.StockFlag() {
		case models.OutOfStock:
			tag = AlertCritical
		case models.LowStock:
			tag = AlertLow
		default:
			continue
		}
		alerts = append(alerts, StockAlert{
			ProductID:         p.ID,
			Name:              p.Name,
			SKU:               p.SKU,
			Stock:             p.Stock,
			LowStockThreshold: p.LowStockThreshold,
			Tag:               tag,
		})
	}

	sort.SliceStable(alerts, func(a, b int) bool {
		if alerts[a].Stock != alerts[b].Stock {
			return alerts[a].Stock < alerts[b].Stock
		}
		return alerts[a].Name < alerts[b].Name
	})
	if limit > 0 && len(alerts) > limit {
		alerts = alerts[:limit]
	}
	return alerts, nil
}
