package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/khatasathi/inventory-admin/internal/models"
)

type formField struct {
	label string
	input textinput.Model
}

const (
	fieldName = iota
	fieldSKU
	fieldBarcode
	fieldImageURL
	fieldBrand
	fieldCategory
	fieldRetail
	fieldWholesale
	fieldThresholdQty
	fieldStock
	fieldLowStock
	fieldStatus
)

var fieldLabels = []string{
	"Name", "SKU", "Barcode", "Image URL", "Brand", "Category",
	"Retail Price (NPR)", "Wholesale Price (NPR)", "Wholesale Min Qty",
	"Stock", "Low Stock Threshold", "Status",
}

// productForm edits a product draft as text.
type productForm struct {
	fields []formField
	focus  int
	err    string
}

func newProductForm(in models.ProductInput) productForm {
	values := []string{
		in.Name,
		in.SKU,
		models.StringValue(in.Barcode),
		models.StringValue(in.ImageURL),
		in.Brand,
		in.Category,
		strconv.FormatFloat(in.RetailPrice, 'f', -1, 64),
		strconv.FormatFloat(in.WholesalePrice, 'f', -1, 64),
		strconv.Itoa(in.ThresholdQty),
		strconv.Itoa(in.Stock),
		strconv.Itoa(in.LowStockThreshold),
		string(in.Status),
	}

	f := productForm{fields: make([]formField, len(fieldLabels))}
	for i, label := range fieldLabels {
		ti := textinput.New()
		ti.CharLimit = 120
		ti.Prompt = ""
		ti.SetValue(values[i])
		f.fields[i] = formField{label: label, input: ti}
	}
	f.fields[0].input.Focus()
	return f
}

func (f *productForm) move(delta int) tea.Cmd {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].input.Focus()
}

func (f *productForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f productForm) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

// apply copies the form into in. Numbers that do not parse are reported by field.
func (f productForm) apply(in *models.ProductInput) error {
	retail, err := parseNumber(f.value(fieldRetail))
	if err != nil {
		return fmt.Errorf("%s must be a number", fieldLabels[fieldRetail])
	}
	wholesale, err := parseNumber(f.value(fieldWholesale))
	if err != nil {
		return fmt.Errorf("%s must be a number", fieldLabels[fieldWholesale])
	}
	ints := map[int]*int{}
	var thresholdQty, stock, lowStock int
	ints[fieldThresholdQty] = &thresholdQty
	ints[fieldStock] = &stock
	ints[fieldLowStock] = &lowStock
	for idx, dst := range ints {
		v, err := parseWhole(f.value(idx))
		if err != nil {
			return fmt.Errorf("%s must be a whole number", fieldLabels[idx])
		}
		*dst = v
	}

	status := models.Status(f.value(fieldStatus))
	if !status.Valid() {
		return errors.New("Status must be Active or Inactive")
	}

	in.Name = f.value(fieldName)
	in.SKU = f.value(fieldSKU)
	in.Barcode = models.OptionalString(f.value(fieldBarcode))
	in.ImageURL = models.OptionalString(f.value(fieldImageURL))
	in.Brand = f.value(fieldBrand)
	in.Category = f.value(fieldCategory)
	in.RetailPrice = retail
	in.WholesalePrice = wholesale
	in.ThresholdQty = thresholdQty
	in.Stock = stock
	in.LowStockThreshold = lowStock
	in.Status = status
	return nil
}

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseWhole(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
