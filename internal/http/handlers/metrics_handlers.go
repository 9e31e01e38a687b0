package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

const defaultAlertLimit = 10

// GetDashboardKPIsHandler godoc
// @Summary Catalog KPIs for the dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} repo.DashboardKPIs
// @Failure 500 {string} string "Internal error"
// @Router /api/dashboard/kpis [get]
func GetDashboardKPIsHandler(w http.ResponseWriter, r *http.Request) {
	kpis, err := metricsRepo.GetDashboardKPIs(r.Context())
	if err != nil {
		zap.L().Error("dashboard kpis", zap.Error(err))
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, kpis)
}

// GetStockAlertsHandler godoc
// @Summary Active products that are low on or out of stock
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum number of alerts"
// @Success 200 {array} repo.StockAlert
// @Failure 400 {string} string "Invalid limit"
// @Failure 500 {string} string "Internal error"
// @Router /api/dashboard/alerts [get]
func GetStockAlertsHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultAlertLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
			return
		}
		limit = min(v, maxPageSize)
	}

	alerts, err := metricsRepo.GetStockAlerts(r.Context(), limit)
	if err != nil {
		zap.L().Error("stock alerts", zap.Error(err))
		http.Error(w, "failed to fetch alerts", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, alerts)
}
