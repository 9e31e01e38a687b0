package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	repo "github.com/khatasathi/inventory-admin/internal/repo"
	"go.uber.org/zap"
)

// SetProductStatusHandler godoc
// @Summary Activate or deactivate a product
// @Description Setting Inactive is the soft delete; products are never removed.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} OKResponse
// @Failure 400 {string} string "Invalid status"
// @Failure 404 {string} string "Not found"
// @Router /api/products/{id}/status [patch]
// @Security BearerAuth
func SetProductStatusHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req StatusRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !req.Status.Valid() {
		http.Error(w, "status must be Active or Inactive", http.StatusBadRequest)
		return
	}

	if err := productRepo.SetStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		zap.L().Error("set product status", zap.String("id", id), zap.Error(err))
		http.Error(w, "could not update status", http.StatusInternalServerError)
		return
	}

	invalidateMeta(r.Context())
	respondJSON(w, http.StatusOK, OKResponse{OK: true})
}

// BulkSetStatusHandler godoc
// @Summary Set the status of several products at once
// @Description All ids are updated or none are.
// @Tags products
// @Accept json
// @Produce json
// @Param request body BulkStatusRequest true "Product ids and new status"
// @Success 200 {object} OKResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Unknown product"
// @Router /api/products/bulk-status [post]
// @Security BearerAuth
func BulkSetStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req BulkStatusRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if len(req.IDs) == 0 {
		http.Error(w, "ids are required", http.StatusBadRequest)
		return
	}
	if !req.Status.Valid() {
		http.Error(w, "status must be Active or Inactive", http.StatusBadRequest)
		return
	}

	updated, err := productRepo.BulkSetStatus(r.Context(), req.IDs, req.Status)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "one or more products not found", http.StatusNotFound)
			return
		}
		zap.L().Error("bulk set status", zap.Int("ids", len(req.IDs)), zap.Error(err))
		http.Error(w, "could not update status", http.StatusInternalServerError)
		return
	}

	invalidateMeta(r.Context())
	zap.L().Info("bulk status applied", zap.Int("updated", updated), zap.String("status", string(req.Status)))
	respondJSON(w, http.StatusOK, OKResponse{OK: true})
}
