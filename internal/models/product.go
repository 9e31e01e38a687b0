package models

// Status is the lifecycle state of a product. Inactive doubles as the soft-deleted state.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Product represents a catalog entry in the inventory system.
type Product struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	SKU               string  `json:"sku"`
	Barcode           *string `json:"barcode,omitempty"`
	ImageURL          *string `json:"imageUrl,omitempty"`
	Brand             string  `json:"brand"`
	Category          string  `json:"category"`
	RetailPrice       float64 `json:"retailPrice"`
	WholesalePrice    float64 `json:"wholesalePrice"`
	ThresholdQty      int     `json:"thresholdQty"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"lowStockThreshold"`
	Status            Status  `json:"status"`
	CreatedAt         string  `json:"createdAt,omitempty"`
	UpdatedAt         string  `json:"updatedAt,omitempty"`
}

// ProductInput is the writable part of a product, used for create and update.
type ProductInput struct {
	Name              string  `json:"name"`
	SKU               string  `json:"sku"`
	Barcode           *string `json:"barcode,omitempty"`
	ImageURL          *string `json:"imageUrl,omitempty"`
	Brand             string  `json:"brand"`
	Category          string  `json:"category"`
	RetailPrice       float64 `json:"retailPrice"`
	WholesalePrice    float64 `json:"wholesalePrice"`
	ThresholdQty      int     `json:"thresholdQty"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"lowStockThreshold"`
	Status            Status  `json:"status"`
}

// StockFlag derives the stock flag from the product's stock and threshold.
func (p Product) StockFlag() StockFlag {
	return Classify(p.Stock, p.LowStockThreshold)
}

// Input returns the writable fields of p.
func (p Product) Input() ProductInput {
	return ProductInput{
		Name:              p.Name,
		SKU:               p.SKU,
		Barcode:           cloneString(p.Barcode),
		ImageURL:          cloneString(p.ImageURL),
		Brand:             p.Brand,
		Category:          p.Category,
		RetailPrice:       p.RetailPrice,
		WholesalePrice:    p.WholesalePrice,
		ThresholdQty:      p.ThresholdQty,
		Stock:             p.Stock,
		LowStockThreshold: p.LowStockThreshold,
		Status:            p.Status,
	}
}

// Product builds a Product with the given id from the input.
func (in ProductInput) Product(id string) Product {
	return Product{
		ID:                id,
		Name:              in.Name,
		SKU:               in.SKU,
		Barcode:           cloneString(in.Barcode),
		ImageURL:          cloneString(in.ImageURL),
		Brand:             in.Brand,
		Category:          in.Category,
		RetailPrice:       in.RetailPrice,
		WholesalePrice:    in.WholesalePrice,
		ThresholdQty:      in.ThresholdQty,
		Stock:             in.Stock,
		LowStockThreshold: in.LowStockThreshold,
		Status:            in.Status,
	}
}

// OptionalString returns nil for an empty (after trimming by the caller) value.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences an optional string, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
