package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/khatasathi/inventory-admin/internal/models"
)

const productColumns = `id, name, sku, barcode, image_url, brand, category, retail_price, wholesale_price,
	threshold_qty, stock, low_stock_threshold, status, created_at, updated_at`

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		p                    models.Product
		barcode, imageURL    sql.NullString
		status               string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &barcode, &imageURL, &p.Brand, &p.Category,
		&p.RetailPrice, &p.WholesalePrice, &p.ThresholdQty, &p.Stock, &p.LowStockThreshold,
		&status, &createdAt, &updatedAt)
	if err != nil {
		return models.Product{}, err
	}
	p.Status = models.Status(status)
	if barcode.Valid {
		p.Barcode = &barcode.String
	}
	if imageURL.Valid {
		p.ImageURL = &imageURL.String
	}
	p.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	p.UpdatedAt = updatedAt.UTC().Format(time.RFC3339)
	return p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *PostgresProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	query := `INSERT INTO products (id, name, sku, barcode, image_url, brand, category, retail_price, wholesale_price,
		threshold_qty, stock, low_stock_threshold, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	row := r.db.QueryRowContext(ctx, query, uuid.NewString(), p.Name, p.SKU, p.Barcode, p.ImageURL, p.Brand,
		p.Category, p.RetailPrice, p.WholesalePrice, p.ThresholdQty, p.Stock, p.LowStockThreshold, string(p.Status),
		time.Now().UTC())
	created, err := scanProduct(row)
	if isUniqueViolation(err) {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	return created, err
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

func (r *PostgresProductRepository) GetBySKU(ctx context.Context, sku string) (models.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE lower(sku) = lower($1)`, sku)
}

func (r *PostgresProductRepository) getOne(ctx context.Context, query string, arg any) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, sku = $2, barcode = $3, image_url = $4, brand = $5, category = $6,
		retail_price = $7, wholesale_price = $8, threshold_qty = $9, stock = $10, low_stock_threshold = $11,
		status = $12, updated_at = $13
		WHERE id = $14
		RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	row := r.db.QueryRowContext(ctx, query, p.Name, p.SKU, p.Barcode, p.ImageURL, p.Brand, p.Category,
		p.RetailPrice, p.WholesalePrice, p.ThresholdQty, p.Stock, p.LowStockThreshold, string(p.Status),
		time.Now().UTC(), p.ID)
	updated, err := scanProduct(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Product{}, ErrProductNotFound
	case isUniqueViolation(err):
		return models.Product{}, ErrDuplicatedValueUnique
	}
	return updated, err
}

func (r *PostgresProductRepository) SetStatus(ctx context.Context, id string, status models.Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE products SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// BulkSetStatus updates all ids in one transaction and rolls back if any id is unknown.
func (r *PostgresProductRepository) BulkSetStatus(ctx context.Context, ids []string, status models.Status) (int, error) {
	if !status.Valid() {
		return 0, ErrInvalidStatus
	}
	ids = dedupe(ids)
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin bulk status: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE products SET status = $1, updated_at = $2 WHERE id = ANY($3)`,
		string(status), time.Now().UTC(), ids)
	if err != nil {
		return 0, err
	}
	rowsAffected, _ := res.RowsAffected()
	if int(rowsAffected) != len(ids) {
		return 0, ErrProductNotFound
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit bulk status: %w", err)
	}
	return len(ids), nil
}

func (r *PostgresProductRepository) Filter(ctx context.Context, pf ProductFilter) ([]models.Product, int, error) {
	conditions, args, argIdx := filterConditions(pf)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM products WHERE 1=1" + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	query += conditions
	query += " ORDER BY name, id"

	if pf.Limit != nil && *pf.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *pf.Limit)
		argIdx++
	}
	if pf.Offset != nil && *pf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *pf.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, totalCount, nil
}

// filterConditions mirrors models.Classify in SQL so both repositories agree on stock flags.
func filterConditions(pf ProductFilter) (string, []any, int) {
	query := ""
	argIdx := 1
	args := []any{}

	if pf.Query != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d OR COALESCE(barcode, '') ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+pf.Query+"%")
		argIdx++
	}
	if pf.Brand != "" {
		query += fmt.Sprintf(" AND brand = $%d", argIdx)
		args = append(args, pf.Brand)
		argIdx++
	}
	if pf.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, pf.Category)
		argIdx++
	}
	switch pf.StockStatus {
	case "in":
		query += " AND stock > 0 AND stock > low_stock_threshold"
	case "low":
		query += " AND stock > 0 AND stock <= low_stock_threshold"
	case "out":
		query += " AND stock <= 0"
	}
	if pf.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*pf.Status))
		argIdx++
	}
	if pf.LowOnly {
		query += " AND (stock <= 0 OR stock <= low_stock_threshold)"
	}

	return query, args, argIdx
}

func (r *PostgresProductRepository) Meta(ctx context.Context) (ProductMeta, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	brands, err := r.distinct(ctx, `SELECT DISTINCT brand FROM products WHERE brand <> '' ORDER BY brand`)
	if err != nil {
		return ProductMeta{}, err
	}
	categories, err := r.distinct(ctx, `SELECT DISTINCT category FROM products WHERE category <> '' ORDER BY category`)
	if err != nil {
		return ProductMeta{}, err
	}
	return ProductMeta{Brands: brands, Categories: categories}, nil
}

func (r *PostgresProductRepository) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
