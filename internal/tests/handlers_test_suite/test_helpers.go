package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/khatasathi/inventory-admin/internal/auth"
	handler "github.com/khatasathi/inventory-admin/internal/http/handlers"
	rl "github.com/khatasathi/inventory-admin/internal/http/rate_limiter"
	"github.com/khatasathi/inventory-admin/internal/http/router"
	"github.com/khatasathi/inventory-admin/internal/models"
	"github.com/khatasathi/inventory-admin/internal/repo"
)

var (
	token       string
	productRepo *repo.InMemoryProductRepository
)

func init() {
	auth.Configure("test-secret", time.Hour)
	rl.Configure(1000, 1000)
	setupTestRepos("secret")
	r := router.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)
	handler.SetMetricsRepo(repo.NewInMemoryMetricsRepository(productRepo))
	handler.SetUserRepo(repo.NewInMemoryUserRepository())
	handler.SetMetaCache(nil)

	if err := handler.SeedAdmin(context.Background(), "admin", password); err != nil {
		panic(fmt.Sprintf("error seeding admin: %v", err))
	}
}

func clearAllProducts() {
	productRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with %d: %s", w.Code, w.Body.String())
	}

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func authorized(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func newProduct(name, sku string, stock, lowStockThreshold int) handler.ProductRequest {
	return handler.ProductRequest{
		Name:              name,
		SKU:               sku,
		Brand:             "CG Foods",
		Category:          "Groceries",
		RetailPrice:       100,
		WholesalePrice:    80,
		ThresholdQty:      1,
		Stock:             stock,
		LowStockThreshold: lowStockThreshold,
		Status:            models.StatusActive,
	}
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authorized(http.MethodPost, "/api/products", body))
	return w
}

func mustCreateProduct(t testing.TB, r http.Handler, p handler.ProductRequest) handler.ProductResponse {
	t.Helper()
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create %q: %d %s", p.Name, w.Code, w.Body.String())
	}
	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding created product: %v", err)
	}
	return created
}

func listProducts(r http.Handler, query string) (handler.ProductsPage, int) {
	req := httptest.NewRequest(http.MethodGet, "/api/products"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var page handler.ProductsPage
	if w.Code == http.StatusOK {
		_ = json.NewDecoder(w.Body).Decode(&page)
	}
	return page, w.Code
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
