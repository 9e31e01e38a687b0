package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardKPIs(ctx context.Context) (DashboardKPIs, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var m DashboardKPIs
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Active'),
			COUNT(*) FILTER (WHERE status <> 'Active'),
			COUNT(*) FILTER (WHERE status = 'Active' AND stock > 0 AND stock <= low_stock_threshold),
			COUNT(*) FILTER (WHERE status = 'Active' AND stock <= 0),
			COALESCE(SUM(retail_price * stock) FILTER (WHERE status = 'Active' AND stock > 0), 0),
			COALESCE(SUM(wholesale_price * stock) FILTER (WHERE status = 'Active' AND stock > 0), 0)
		FROM products
	`).Scan(&m.TotalProducts, &m.ActiveProducts, &m.InactiveProducts, &m.LowStockCount,
		&m.OutOfStockCount, &m.InventoryRetailValue, &m.InventoryWholesaleValue)

	return m, err
}

func (r *PostgresMetricsRepository) GetStockAlerts(ctx context.Context, limit int) ([]StockAlert, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, sku, stock, low_stock_threshold,
			CASE WHEN stock <= 0 THEN 'CRITICAL' ELSE 'LOW' END
		FROM products
		WHERE status = 'Active' AND (stock <= 0 OR stock <= low_stock_threshold)
		ORDER BY stock, name
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := []StockAlert{}
	for rows.Next() {
		var a StockAlert
		if err := rows.Scan(&a.ProductID, &a.Name, &a.SKU, &a.Stock, &a.LowStockThreshold, &a.Tag); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
