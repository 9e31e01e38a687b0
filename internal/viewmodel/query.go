package viewmodel

import (
	"slices"
	"strings"

	"github.com/khatasathi/inventory-admin/internal/client"
	"github.com/khatasathi/inventory-admin/internal/models"
)

const (
	StockAll = "all"
	StockIn  = "in"
	StockLow = "low"
	StockOut = "out"

	StatusAll      = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"

	DefaultPageSize = 6
)

// PageSizes lists the page sizes a user can pick.
var PageSizes = []int{6, 10, 25, 50}

// Criteria is the set of list filters. The zero value is not valid; use DefaultCriteria.
type Criteria struct {
	Query       string
	Brand       string
	Category    string
	StockStatus string
	Status      string
	LowOnly     bool
}

func DefaultCriteria() Criteria {
	return Criteria{
		Brand:       client.AllBrands,
		Category:    client.AllCategories,
		StockStatus: StockAll,
		Status:      StatusAll,
	}
}

func validStockStatus(s string) bool {
	return s == StockAll || s == StockIn || s == StockLow || s == StockOut
}

func validStatusFilter(s string) bool {
	return s == StatusAll || s == StatusActive || s == StatusInactive
}

// TotalPages is never less than one.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// QueryModel holds the list criteria, the current page and the last page of
// results. Results are only replaced by the response to the latest load.
type QueryModel struct {
	criteria Criteria
	page     int
	pageSize int
	items    []models.Product
	total    int
	seq      uint64
}

func NewQueryModel() *QueryModel {
	return &QueryModel{
		criteria: DefaultCriteria(),
		page:     1,
		pageSize: DefaultPageSize,
		items:    []models.Product{},
	}
}

func (m *QueryModel) Criteria() Criteria {
	return m.criteria
}

func (m *QueryModel) PageSize() int {
	return m.pageSize
}

func (m *QueryModel) Total() int {
	return m.total
}

func (m *QueryModel) Items() []models.Product {
	return slices.Clone(m.items)
}

func (m *QueryModel) TotalPages() int {
	return TotalPages(m.total, m.pageSize)
}

// Page is the current page clamped to TotalPages.
func (m *QueryModel) Page() int {
	return min(m.page, m.TotalPages())
}

// find returns the loaded product with the given id.
func (m *QueryModel) find(id string) (models.Product, bool) {
	for _, p := range m.items {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

type loadTicket struct {
	seq            uint64
	query          client.ProductsQuery
	page           int
	pageSize       int
	clearSelection bool
}

// begin issues a new load for the current criteria. Any ticket issued before it becomes stale.
func (m *QueryModel) begin(page, pageSize int, clearSelection bool) loadTicket {
	m.seq++
	return loadTicket{
		seq:            m.seq,
		query:          m.request(page, pageSize),
		page:           page,
		pageSize:       pageSize,
		clearSelection: clearSelection,
	}
}

func (m *QueryModel) current(t loadTicket) bool {
	return t.seq == m.seq
}

func (m *QueryModel) request(page, pageSize int) client.ProductsQuery {
	c := m.criteria
	return client.ProductsQuery{
		Q:           strings.TrimSpace(c.Query),
		Brand:       c.Brand,
		Category:    c.Category,
		StockStatus: c.StockStatus,
		Status:      c.Status,
		LowOnly:     c.LowOnly,
		Page:        page,
		PageSize:    pageSize,
	}
}

func (m *QueryModel) apply(t loadTicket, res client.ProductPage) {
	m.page = t.page
	m.pageSize = t.pageSize
	m.items = slices.Clone(res.Items)
	if m.items == nil {
		m.items = []models.Product{}
	}
	m.total = res.Total
}
