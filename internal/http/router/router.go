package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/khatasathi/inventory-admin/internal/http/handlers"
	mw "github.com/khatasathi/inventory-admin/internal/http/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/khatasathi/inventory-admin/docs"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger)
	r.Use(mw.Metrics)

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.HealthHandler)
		r.With(mw.RateLimitMiddleware).Post("/login", handlers.LoginHandler)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", handlers.ListProductsHandler)
			r.Get("/meta", handlers.ProductsMetaHandler)

			r.Group(func(r chi.Router) {
				r.Use(mw.AuthMiddleware)
				r.Post("/", handlers.CreateProductHandler)
				r.Post("/bulk-status", handlers.BulkSetStatusHandler)
				r.Post("/import", handlers.ImportProductsHandler)
				r.Get("/export", handlers.ExportProductsHandler)
				r.Put("/{id}", handlers.UpdateProductHandler)
				r.Patch("/{id}/status", handlers.SetProductStatusHandler)
			})

			r.Get("/{id}", handlers.GetProductByIDHandler)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/kpis", handlers.GetDashboardKPIsHandler)
			r.Get("/alerts", handlers.GetStockAlertsHandler)
		})

		r.With(mw.AuthMiddleware).Post("/admin/users", handlers.RegisterAsAdminHandler)
	})

	return r
}
