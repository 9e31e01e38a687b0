package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/khatasathi/inventory-admin/internal/http/router"
	"github.com/khatasathi/inventory-admin/internal/models"
	"github.com/khatasathi/inventory-admin/internal/repo"
)

func TestDashboardKPIsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := router.NewRouter()

	products := seedCatalog(t, r)
	setStatus(r, products["Honey"].ID, models.StatusInactive)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/kpis", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var kpis repo.DashboardKPIs
	if err := json.NewDecoder(w.Body).Decode(&kpis); err != nil {
		t.Fatalf("failed to decode kpis: %v", err)
	}

	if kpis.TotalProducts != 8 {
		t.Errorf("expected 8 products, got %v", kpis.TotalProducts)
	}
	if kpis.ActiveProducts != 6 || kpis.InactiveProducts != 2 {
		t.Errorf("expected 6 active and 2 inactive, got %d/%d", kpis.ActiveProducts, kpis.InactiveProducts)
	}
	if kpis.LowStockCount != 2 {
		t.Errorf("expected 2 low stock products, got %v", kpis.LowStockCount)
	}
	if kpis.OutOfStockCount != 1 {
		t.Errorf("expected 1 out of stock product, got %v", kpis.OutOfStockCount)
	}
	// Atta 20 + Biscuits 3 + Detergent 50 + Eggs 4 + Flour 15 = 92 units
	if kpis.InventoryRetailValue != 9200 {
		t.Errorf("expected retail value 9200, got %v", kpis.InventoryRetailValue)
	}
	if kpis.InventoryWholesaleValue != 7360 {
		t.Errorf("expected wholesale value 7360, got %v", kpis.InventoryWholesaleValue)
	}
}

func TestStockAlertsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := router.NewRouter()
	seedCatalog(t, r)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/alerts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var alerts []repo.StockAlert
	if err := json.NewDecoder(w.Body).Decode(&alerts); err != nil {
		t.Fatalf("failed to decode alerts: %v", err)
	}
	if len(alerts) != 4 {
		t.Fatalf("expected 4 alerts, got %d", len(alerts))
	}
	if alerts[0].Name != "Cooking Oil" || alerts[0].Tag != repo.AlertCritical {
		t.Errorf("expected out-of-stock alert first, got %+v", alerts[0])
	}
	for _, a := range alerts[1:] {
		if a.Tag != repo.AlertLow {
			t.Errorf("expected LOW tag for %s, got %s", a.Name, a.Tag)
		}
	}

	t.Run("Limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/alerts?limit=2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		var alerts []repo.StockAlert
		json.NewDecoder(w.Body).Decode(&alerts)
		if len(alerts) != 2 {
			t.Errorf("expected 2 alerts, got %d", len(alerts))
		}
	})

	t.Run("Invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/alerts?limit=0", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
