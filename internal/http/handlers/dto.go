package handlers

import "github.com/khatasathi/inventory-admin/internal/models"

type ProductRequest = models.ProductInput

type ProductResponse struct {
	models.Product
	StockFlag models.StockFlag `json:"stockFlag"`
}

func newProductResponse(p models.Product) ProductResponse {
	return ProductResponse{Product: p, StockFlag: p.StockFlag()}
}

type ProductsPage struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

type StatusRequest struct {
	Status models.Status `json:"status"`
}

type BulkStatusRequest struct {
	IDs    []string      `json:"ids"`
	Status models.Status `json:"status"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterAsAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}
