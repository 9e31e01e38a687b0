package models

// StockFlag is the derived availability of a product. It is never persisted.
type StockFlag string

const (
	InStock    StockFlag = "In Stock"
	LowStock   StockFlag = "Low Stock"
	OutOfStock StockFlag = "Out of Stock"
)

// Classify maps a stock count and its low-stock threshold to a StockFlag.
// Rules are evaluated in order; negative stock counts as out of stock.
func Classify(stock, lowStockThreshold int) StockFlag {
	if stock <= 0 {
		return OutOfStock
	}
	if stock <= lowStockThreshold {
		return LowStock
	}
	return InStock
}

// FilterKey returns the stockStatus query value that selects this flag.
func (f StockFlag) FilterKey() string {
	switch f {
	case InStock:
		return "in"
	case LowStock:
		return "low"
	case OutOfStock:
		return "out"
	}
	return ""
}
