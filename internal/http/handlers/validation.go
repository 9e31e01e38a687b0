package handlers

import (
	"strings"

	"github.com/khatasathi/inventory-admin/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p models.ProductInput) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "name", Description: "Name is required"})
	}
	if strings.TrimSpace(p.SKU) == "" {
		errs = append(errs, ProductValidationError{Field: "sku", Description: "SKU is required"})
	}
	if p.RetailPrice < 0 {
		errs = append(errs, ProductValidationError{Field: "retailPrice", Description: "Retail price cannot be negative"})
	}
	if p.WholesalePrice < 0 {
		errs = append(errs, ProductValidationError{Field: "wholesalePrice", Description: "Wholesale price cannot be negative"})
	}
	if p.ThresholdQty < 0 {
		errs = append(errs, ProductValidationError{Field: "thresholdQty", Description: "Threshold quantity cannot be negative"})
	}
	if p.Stock < 0 {
		errs = append(errs, ProductValidationError{Field: "stock", Description: "Stock cannot be negative"})
	}
	if p.LowStockThreshold < 0 {
		errs = append(errs, ProductValidationError{Field: "lowStockThreshold", Description: "Low stock threshold cannot be negative"})
	}
	if !p.Status.Valid() {
		errs = append(errs, ProductValidationError{Field: "status", Description: "Status must be Active or Inactive"})
	}
	return errs
}

// normalizeProduct trims text fields and drops blank optional values.
func normalizeProduct(p models.ProductInput) models.ProductInput {
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.TrimSpace(p.SKU)
	p.Brand = strings.TrimSpace(p.Brand)
	p.Category = strings.TrimSpace(p.Category)
	if p.Barcode != nil {
		p.Barcode = models.OptionalString(strings.TrimSpace(*p.Barcode))
	}
	if p.ImageURL != nil {
		p.ImageURL = models.OptionalString(strings.TrimSpace(*p.ImageURL))
	}
	if p.Status == "" {
		p.Status = models.StatusActive
	}
	return p
}
