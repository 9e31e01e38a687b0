package repo

import "github.com/khatasathi/inventory-admin/internal/models"

// ProductFilter narrows a product listing. Zero values mean "no filter".
type ProductFilter struct {
	Query       string
	Brand       string
	Category    string
	StockStatus string // "in", "low" or "out"
	Status      *models.Status
	LowOnly     bool
	Offset      *int
	Limit       *int
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Query != "" && !containsFold(p.Name, pf.Query) && !containsFold(p.SKU, pf.Query) &&
		!containsFold(models.StringValue(p.Barcode), pf.Query) {
		return false
	}
	if pf.Brand != "" && p.Brand != pf.Brand {
		return false
	}
	if pf.Category != "" && p.Category != pf.Category {
		return false
	}
	flag := p.StockFlag()
	if pf.StockStatus != "" && flag.FilterKey() != pf.StockStatus {
		return false
	}
	if pf.Status != nil && p.Status != *pf.Status {
		return false
	}
	if pf.LowOnly && flag == models.InStock {
		return false
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
