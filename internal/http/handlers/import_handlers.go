package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	models "github.com/khatasathi/inventory-admin/internal/models"
	repo "github.com/khatasathi/inventory-admin/internal/repo"
	"go.uber.org/zap"
)

var csvColumns = []string{
	"name", "sku", "barcode", "brand", "category",
	"retailPrice", "wholesalePrice", "thresholdQty", "stock", "lowStockThreshold", "status",
}

type csvRow struct {
	line  int
	input models.ProductInput
	err   error
}

func parseCSV(r io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "sku"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("CSV header must include %q", required)
		}
	}

	var rows []csvRow
	for line := 2; ; line++ { // header is line 1
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		field := func(name string) string {
			i, ok := index[strings.ToLower(name)]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		row := csvRow{line: line}
		row.input, row.err = rowInput(field)
		rows = append(rows, row)
	}
	return rows, nil
}

func rowInput(field func(string) string) (models.ProductInput, error) {
	in := models.ProductInput{
		Name:     field("name"),
		SKU:      field("sku"),
		Barcode:  models.OptionalString(field("barcode")),
		Brand:    field("brand"),
		Category: field("category"),
		Status:   models.Status(field("status")),
	}

	var err error
	if in.RetailPrice, err = parseFloat(field("retailPrice")); err != nil {
		return in, fmt.Errorf("invalid retailPrice")
	}
	if in.WholesalePrice, err = parseFloat(field("wholesalePrice")); err != nil {
		return in, fmt.Errorf("invalid wholesalePrice")
	}
	if in.ThresholdQty, err = parseInt(field("thresholdQty")); err != nil {
		return in, fmt.Errorf("invalid thresholdQty")
	}
	if in.Stock, err = parseInt(field("stock")); err != nil {
		return in, fmt.Errorf("invalid stock")
	}
	if in.LowStockThreshold, err = parseInt(field("lowStockThreshold")); err != nil {
		return in, fmt.Errorf("invalid lowStockThreshold")
	}
	return in, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Rows are matched by SKU. mode=skip reports existing SKUs, mode=update overwrites them.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /api/products/import [post]
// @Security BearerAuth
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	imported := 0
	errorsList := []ProductValidationError{}
	rowError := func(line int, format string, args ...any) {
		errorsList = append(errorsList, ProductValidationError{
			Field:       fmt.Sprintf("row %d", line),
			Description: fmt.Sprintf(format, args...),
		})
	}

	for _, row := range rows {
		if row.err != nil {
			rowError(row.line, "%v", row.err)
			continue
		}
		in := normalizeProduct(row.input)
		if errs := validateProduct(in); len(errs) > 0 {
			rowError(row.line, "%s: %s", errs[0].Field, errs[0].Description)
			continue
		}

		existing, err := productRepo.GetBySKU(ctx, in.SKU)
		switch {
		case err == nil:
			if mode == "skip" {
				rowError(row.line, "product with SKU '%s' already exists", in.SKU)
				continue
			}
			if _, err := productRepo.Update(ctx, in.Product(existing.ID)); err != nil {
				rowError(row.line, "failed to update '%s'", in.SKU)
				continue
			}
		case errors.Is(err, repo.ErrProductNotFound):
			if _, err := productRepo.Create(ctx, in.Product("")); err != nil {
				rowError(row.line, "%v", err)
				continue
			}
		default:
			zap.L().Error("import lookup", zap.String("sku", in.SKU), zap.Error(err))
			rowError(row.line, "failed to look up '%s'", in.SKU)
			continue
		}
		imported++
	}

	if imported > 0 {
		invalidateMeta(ctx)
	}
	respondJSON(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
}

// ExportProductsHandler godoc
// @Summary Export products as CSV
// @Description Accepts the same filters as the product list, without paging.
// @Tags import
// @Produce text/csv
// @Param q query string false "Matches name, SKU or barcode"
// @Param brand query string false "Exact brand"
// @Param category query string false "Exact category"
// @Param stockStatus query string false "all|in|low|out"
// @Param status query string false "all|active|inactive"
// @Param lowOnly query bool false "Only low or out of stock"
// @Success 200 {string} string "CSV file"
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /api/products/export [get]
// @Security BearerAuth
func ExportProductsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r.URL.Query(), false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	products, _, err := productRepo.Filter(r.Context(), filter)
	if err != nil {
		http.Error(w, "could not export products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="products.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write(csvColumns)
	for _, p := range products {
		_ = cw.Write([]string{
			p.Name,
			p.SKU,
			models.StringValue(p.Barcode),
			p.Brand,
			p.Category,
			strconv.FormatFloat(p.RetailPrice, 'f', 2, 64),
			strconv.FormatFloat(p.WholesalePrice, 'f', 2, 64),
			strconv.Itoa(p.ThresholdQty),
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.LowStockThreshold),
			string(p.Status),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		zap.L().Error("export products", zap.Error(err))
	}
}
