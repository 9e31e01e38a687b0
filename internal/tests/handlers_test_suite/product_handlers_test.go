package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	handler "github.com/khatasathi/inventory-admin/internal/http/handlers"
	"github.com/khatasathi/inventory-admin/internal/http/router"
	"github.com/khatasathi/inventory-admin/internal/models"
	"github.com/khatasathi/inventory-admin/internal/repo"
)

func TestHealthHandler(t *testing.T) {
	r := router.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Status != "OK" || resp.Message != "KhataSathi API running" {
		t.Errorf("unexpected health response: %+v", resp)
	}
}

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := router.NewRouter()

	w := createProduct(r, newProduct("Basmati Rice 5kg", "RICE-5", 3, 5))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.ID == "" {
		t.Error("expected an assigned id")
	}
	if resp.Name != "Basmati Rice 5kg" {
		t.Errorf("expected name 'Basmati Rice 5kg', got %v", resp.Name)
	}
	if resp.RetailPrice != 100 {
		t.Errorf("expected retail price 100, got %v", resp.RetailPrice)
	}
	if resp.StockFlag != models.LowStock {
		t.Errorf("expected %q, got %q", models.LowStock, resp.StockFlag)
	}
}

func TestCreateProductHandler_DefaultsStatusAndTrims(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := router.NewRouter()

	p := newProduct("  Ghee 1L ", " GHEE-1 ", 10, 2)
	p.Status = ""
	blank := "   "
	p.Barcode = &blank

	created := mustCreateProduct(t, r, p)

	if created.Name != "Ghee 1L" || created.SKU != "GHEE-1" {
		t.Errorf("expected trimmed name and sku, got %q / %q", created.Name, created.SKU)
	}
	if created.Status != models.StatusActive {
		t.Errorf("expected default status Active, got %q", created.Status)
	}
	if created.Barcode != nil {
		t.Errorf("expected blank barcode to be dropped, got %q", *created.Barcode)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := router.NewRouter()

	negative := newProduct("Soap", "SOAP-1", -1, 5)
	negative.RetailPrice = -5

	badStatus := newProduct("Soap", "SOAP-2", 1, 5)
	badStatus.Status = "Archived"

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectCode     int
		expectedErrors []string
	}{
		{
			name:           "Empty name and sku",
			payload:        newProduct("", " ", 1, 1),
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"name", "sku"},
		},
		{
			name:           "Negative price and stock",
			payload:        negative,
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"retailPrice", "stock"},
		},
		{
			name:           "Unknown status",
			payload:        badStatus,
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d", tt.expectCode, w.Code)
			}

			var resp []handler.ProductValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_DuplicateSKU(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := router.NewRouter()

	mustCreateProduct(t, r, newProduct("Sugar 1kg", "SUGAR-1", 10, 5))
	w := createProduct(r, newProduct("Sugar 1kg again", "SUGAR-1", 10, 5))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "SKU already exists" {
		t.Errorf("expected plain-text conflict message, got %q", got)
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := router.NewRouter()

	badJSON := `{name: "Invalid" sku: "X"}` // missing comma
	req := authorized(http.MethodPost, "/api/products", []byte(badJSON))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}

	expectedBody := "invalid input\n"
	if w.Body.String() != expectedBody {
		t.Errorf("expected response body %q, got %q", expectedBody, w.Body.String())
	}
}

func TestCreateProductHandler_RequiresToken(t *testing.T) {
	r := router.NewRouter()

	body, _ := json.Marshal(newProduct("Tea", "TEA-1", 1, 1))
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := router.NewRouter()

	created := mustCreateProduct(t, r, newProduct("Lentils", "DAL-1", 0, 5))

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+created.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var got handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&got)
	if got.ID != created.ID || got.StockFlag != models.OutOfStock {
		t.Errorf("unexpected product: %+v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products/does-not-exist", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestUpdateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := router.NewRouter()
	created := mustCreateProduct(t, r, newProduct("Old Name", "OLD-1", 10, 5))

	update := newProduct("New Name", "OLD-1", 20, 5)
	update.RetailPrice = 250
	body, _ := json.Marshal(update)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authorized(http.MethodPut, "/api/products/"+created.ID, body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var updated handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding update response: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("expected id to stay %q, got %q", created.ID, updated.ID)
	}
	if updated.Name != "New Name" {
		t.Errorf("expected name 'New Name', got %v", updated.Name)
	}
	if updated.RetailPrice != 250 {
		t.Errorf("expected retail price 250, got %v", updated.RetailPrice)
	}
	if updated.Stock != 20 {
		t.Errorf("expected stock 20, got %v", updated.Stock)
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	r := router.NewRouter()
	body, _ := json.Marshal(newProduct("Ghost", "GHOST", 1, 1))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authorized(http.MethodPut, "/api/products/999999", body))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestUpdateProductHandler_DuplicateSKU(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := router.NewRouter()

	mustCreateProduct(t, r, newProduct("Salt", "SALT-1", 10, 5))
	pepper := mustCreateProduct(t, r, newProduct("Pepper", "PEP-1", 10, 5))

	body, _ := json.Marshal(newProduct("Pepper", "SALT-1", 10, 5))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authorized(http.MethodPut, "/api/products/"+pepper.ID, body))

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestUpdateProductHandler_ValidationErrors(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := router.NewRouter()

	created := mustCreateProduct(t, r, newProduct("Temporary", "TMP-1", 1, 1))

	invalid := newProduct("", "TMP-1", -1, 1)
	body, _ := json.Marshal(invalid)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authorized(http.MethodPut, "/api/products/"+created.ID, body))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}

	var resp []handler.ProductValidationError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	assertField := func(field string) {
		found := false
		for _, err := range resp {
			if err.Field == field {
				found = true
				break
			}
		}

		if !found {
			t.Errorf("expected validation error for '%v'", field)
		}
	}

	assertField("name")
	assertField("stock")
}

func seedCatalog(t *testing.T, r http.Handler) map[string]handler.ProductResponse {
	t.Helper()

	products := []handler.ProductRequest{
		newProduct("Atta 10kg", "ATTA-10", 20, 5), // in stock
		newProduct("Biscuits", "BIS-1", 3, 5),     // low stock
		newProduct("Cooking Oil", "OIL-1", 0, 5),  // out of stock
		newProduct("Detergent", "DET-1", 50, 10),  // in stock
		newProduct("Eggs (tray)", "EGG-30", 4, 4), // low stock, at threshold
		newProduct("Flour", "FLR-1", 15, 5),       // in stock
		newProduct("Green Tea", "TEA-G", 8, 5),    // in stock
		newProduct("Honey", "HNY-1", 1, 2),        // low stock
	}
	products[3].Brand = "Surf"
	products[3].Category = "Household"
	products[6].Status = models.StatusInactive

	byName := map[string]handler.ProductResponse{}
	for _, p := range products {
		created := mustCreateProduct(t, r, p)
		byName[created.Name] = created
	}
	return byName
}

func TestListProductsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := router.NewRouter()
	seedCatalog(t, r)

	t.Run("Default paging", func(t *testing.T) {
		page, code := listProducts(r, "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if page.Total != 8 {
			t.Errorf("expected total 8, got %d", page.Total)
		}
		if len(page.Items) != 6 {
			t.Fatalf("expected default page size 6, got %d", len(page.Items))
		}
		if page.Items[0].Name != "Atta 10kg" {
			t.Errorf("expected items ordered by name, got %q first", page.Items[0].Name)
		}
	})

	t.Run("Second page", func(t *testing.T) {
		page, _ := listProducts(r, "?page=2&pageSize=6")
		if len(page.Items) != 2 || page.Total != 8 {
			t.Errorf("expected 2 items of 8, got %d of %d", len(page.Items), page.Total)
		}
	})

	t.Run("Page past the end", func(t *testing.T) {
		page, code := listProducts(r, "?page=9")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if len(page.Items) != 0 || page.Total != 8 {
			t.Errorf("expected empty page with total 8, got %d of %d", len(page.Items), page.Total)
		}
	})

	t.Run("Search matches name and sku", func(t *testing.T) {
		page, _ := listProducts(r, "?q=tea")
		if page.Total != 1 || page.Items[0].SKU != "TEA-G" {
			t.Errorf("expected Green Tea, got %+v", page.Items)
		}
		page, _ = listProducts(r, "?q=egg-30")
		if page.Total != 1 || page.Items[0].Name != "Eggs (tray)" {
			t.Errorf("expected sku match, got %+v", page.Items)
		}
	})

	t.Run("Brand and category", func(t *testing.T) {
		page, _ := listProducts(r, "?brand=Surf")
		if page.Total != 1 || page.Items[0].Name != "Detergent" {
			t.Errorf("expected Detergent, got %+v", page.Items)
		}
		page, _ = listProducts(r, "?category=Groceries")
		if page.Total != 7 {
			t.Errorf("expected 7 groceries, got %d", page.Total)
		}
	})

	t.Run("Stock status", func(t *testing.T) {
		tests := map[string]int{"in": 4, "low": 3, "out": 1, "all": 8}
		for status, want := range tests {
			page, _ := listProducts(r, "?stockStatus="+status)
			if page.Total != want {
				t.Errorf("stockStatus=%s: expected %d, got %d", status, want, page.Total)
			}
		}
	})

	t.Run("Low only keeps low and out of stock", func(t *testing.T) {
		page, _ := listProducts(r, "?lowOnly=true&pageSize=50")
		if page.Total != 4 {
			t.Fatalf("expected 4, got %d", page.Total)
		}
		for _, p := range page.Items {
			if p.StockFlag == models.InStock {
				t.Errorf("unexpected in-stock product %q", p.Name)
			}
		}
	})

	t.Run("Status", func(t *testing.T) {
		page, _ := listProducts(r, "?status=inactive")
		if page.Total != 1 || page.Items[0].Name != "Green Tea" {
			t.Errorf("expected Green Tea only, got %+v", page.Items)
		}
		page, _ = listProducts(r, "?status=active")
		if page.Total != 7 {
			t.Errorf("expected 7 active, got %d", page.Total)
		}
	})

	t.Run("Invalid parameters", func(t *testing.T) {
		for _, q := range []string{"?stockStatus=some", "?status=deleted", "?lowOnly=maybe", "?page=0", "?pageSize=abc"} {
			_, code := listProducts(r, q)
			if code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", q, code)
			}
		}
	})
}

func TestProductsMetaHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := router.NewRouter()
	seedCatalog(t, r)

	req := httptest.NewRequest(http.MethodGet, "/api/products/meta", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var meta repo.ProductMeta
	if err := json.NewDecoder(w.Body).Decode(&meta); err != nil {
		t.Fatalf("error decoding meta: %v", err)
	}
	if strings.Join(meta.Brands, ",") != "CG Foods,Surf" {
		t.Errorf("unexpected brands: %v", meta.Brands)
	}
	if strings.Join(meta.Categories, ",") != "Groceries,Household" {
		t.Errorf("unexpected categories: %v", meta.Categories)
	}
}
