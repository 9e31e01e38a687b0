// Package viewmodel holds the state behind the products and dashboard screens.
// It talks to the API through small interfaces and never patches lists
// locally: every successful change is followed by a reload.
package viewmodel

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/khatasathi/inventory-admin/internal/client"
	"github.com/khatasathi/inventory-admin/internal/models"
)

const (
	fallbackBrand    = "CG Foods"
	fallbackCategory = "Groceries"
)

// ProductsAPI is the part of the API client the products screen uses.
type ProductsAPI interface {
	ListProducts(ctx context.Context, q client.ProductsQuery) (client.ProductPage, error)
	ProductsMeta(ctx context.Context) (client.ProductsMeta, error)
	CreateProduct(ctx context.Context, in models.ProductInput) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, in models.ProductInput) (models.Product, error)
	SetProductStatus(ctx context.Context, id string, status models.Status) error
	BulkSetStatus(ctx context.Context, ids []string, status models.Status) error
}

// Row is a loaded product as the table shows it.
type Row struct {
	models.Product
	Flag     models.StockFlag
	Selected bool
}

// Snapshot is a consistent copy of the view state.
type Snapshot struct {
	Rows        []Row
	Total       int
	Page        int
	PageSize    int
	TotalPages  int
	Criteria    Criteria
	Brands      []string
	Categories  []string
	SelectedIDs []string
	AllSelected bool
	Dialog      DialogState
	Active      *models.Product
	Draft       models.ProductInput
	Notice      *Notice
}

type ProductsViewModel struct {
	api ProductsAPI

	mu         sync.Mutex
	query      *QueryModel
	selection  *Selection
	dialog     Dialog
	brands     []string
	categories []string
	notice     *Notice
}

func NewProductsViewModel(api ProductsAPI) *ProductsViewModel {
	return &ProductsViewModel{
		api:       api,
		query:     NewQueryModel(),
		selection: NewSelection(),
	}
}

// Init loads the brand/category options and the first page.
func (vm *ProductsViewModel) Init(ctx context.Context) error {
	if err := vm.LoadMeta(ctx); err != nil {
		return err
	}
	return vm.load(ctx, 1, vm.pageSize(), true)
}

func (vm *ProductsViewModel) LoadMeta(ctx context.Context) error {
	meta, err := vm.api.ProductsMeta(ctx)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if err != nil {
		vm.setNotice(NoticeDanger, message(err, "Failed to load products."))
		return err
	}
	vm.brands = slices.Clone(meta.Brands)
	vm.categories = slices.Clone(meta.Categories)
	return nil
}

// Reload fetches the current page again with unchanged criteria.
func (vm *ProductsViewModel) Reload(ctx context.Context) error {
	vm.mu.Lock()
	page, size := vm.query.Page(), vm.query.PageSize()
	vm.mu.Unlock()
	return vm.load(ctx, page, size, false)
}

func (vm *ProductsViewModel) pageSize() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.query.PageSize()
}

// load requests one page. A response that is not for the latest request is
// dropped with ErrStaleResponse and leaves every piece of state untouched.
func (vm *ProductsViewModel) load(ctx context.Context, page, pageSize int, clearSelection bool) error {
	vm.mu.Lock()
	ticket := vm.query.begin(page, pageSize, clearSelection)
	vm.mu.Unlock()

	res, err := vm.api.ListProducts(ctx, ticket.query)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if !vm.query.current(ticket) {
		return ErrStaleResponse
	}
	if err != nil {
		vm.setNotice(NoticeDanger, message(err, "Failed to load products."))
		return err
	}

	vm.query.apply(ticket, res)
	ids := make([]string, len(res.Items))
	for i, p := range res.Items {
		ids[i] = p.ID
	}
	vm.selection.Observe(ids)
	if ticket.clearSelection {
		vm.selection.Clear()
	}
	return nil
}

func (vm *ProductsViewModel) setNotice(kind NoticeKind, msg string) {
	vm.notice = &Notice{Kind: kind, Message: msg}
}

func (vm *ProductsViewModel) Notice() (Notice, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.notice == nil {
		return Notice{}, false
	}
	return *vm.notice, true
}

func (vm *ProductsViewModel) Dismiss() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.notice = nil
}

// setCriteria applies fn to the criteria and, when anything changed, reloads page 1.
func (vm *ProductsViewModel) setCriteria(ctx context.Context, fn func(*Criteria)) error {
	vm.mu.Lock()
	before := vm.query.criteria
	fn(&vm.query.criteria)
	changed := before != vm.query.criteria
	size := vm.query.PageSize()
	vm.mu.Unlock()

	if !changed {
		return nil
	}
	return vm.load(ctx, 1, size, true)
}

func (vm *ProductsViewModel) SetQuery(ctx context.Context, q string) error {
	return vm.setCriteria(ctx, func(c *Criteria) { c.Query = q })
}

// SetBrand filters by brand; client.AllBrands or "" removes the filter.
func (vm *ProductsViewModel) SetBrand(ctx context.Context, brand string) error {
	if brand == "" {
		brand = client.AllBrands
	}
	return vm.setCriteria(ctx, func(c *Criteria) { c.Brand = brand })
}

// SetCategory filters by category; client.AllCategories or "" removes the filter.
func (vm *ProductsViewModel) SetCategory(ctx context.Context, category string) error {
	if category == "" {
		category = client.AllCategories
	}
	return vm.setCriteria(ctx, func(c *Criteria) { c.Category = category })
}

func (vm *ProductsViewModel) SetStockStatus(ctx context.Context, s string) error {
	if !validStockStatus(s) {
		return ErrInvalidFilter
	}
	return vm.setCriteria(ctx, func(c *Criteria) { c.StockStatus = s })
}

func (vm *ProductsViewModel) SetStatusFilter(ctx context.Context, s string) error {
	if !validStatusFilter(s) {
		return ErrInvalidFilter
	}
	return vm.setCriteria(ctx, func(c *Criteria) { c.Status = s })
}

func (vm *ProductsViewModel) SetLowOnly(ctx context.Context, lowOnly bool) error {
	return vm.setCriteria(ctx, func(c *Criteria) { c.LowOnly = lowOnly })
}

// ClearFilters resets every criterion at once, with a single reload.
func (vm *ProductsViewModel) ClearFilters(ctx context.Context) error {
	return vm.setCriteria(ctx, func(c *Criteria) { *c = DefaultCriteria() })
}

// ChangePage moves by direction pages, clamped to the available range.
func (vm *ProductsViewModel) ChangePage(ctx context.Context, direction int) error {
	vm.mu.Lock()
	next := max(1, min(vm.query.Page()+direction, vm.query.TotalPages()))
	size := vm.query.PageSize()
	vm.mu.Unlock()
	return vm.load(ctx, next, size, false)
}

func (vm *ProductsViewModel) ChangePageSize(ctx context.Context, n int) error {
	if !slices.Contains(PageSizes, n) {
		return ErrInvalidPageSize
	}
	return vm.load(ctx, 1, n, false)
}

func (vm *ProductsViewModel) ToggleAll(checked bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.selection.ToggleAll(vm.visibleIDs(), checked)
}

func (vm *ProductsViewModel) ToggleOne(id string, checked bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.selection.ToggleOne(id, checked)
}

func (vm *ProductsViewModel) SelectedIDs() []string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.selection.SelectedIDs()
}

func (vm *ProductsViewModel) ClearSelection() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.selection.Clear()
}

func (vm *ProductsViewModel) visibleIDs() []string {
	ids := make([]string, len(vm.query.items))
	for i, p := range vm.query.items {
		ids[i] = p.ID
	}
	return ids
}

func trimDraft(in models.ProductInput) models.ProductInput {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	return in
}

func validateDraft(in models.ProductInput) error {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.SKU == "" {
		missing = append(missing, "sku")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing, Message: "Name and SKU are required."}
	}
	return nil
}

func (vm *ProductsViewModel) AddProduct(ctx context.Context, draft models.ProductInput) error {
	return vm.save(ctx, "", draft)
}

func (vm *ProductsViewModel) EditProduct(ctx context.Context, id string, draft models.ProductInput) error {
	return vm.save(ctx, id, draft)
}

// save creates the product when id is empty and updates it otherwise. A failed
// save leaves the dialog and its draft as they were.
func (vm *ProductsViewModel) save(ctx context.Context, id string, draft models.ProductInput) error {
	draft = trimDraft(draft)
	if err := validateDraft(draft); err != nil {
		vm.mu.Lock()
		vm.setNotice(NoticeDanger, err.Error())
		vm.mu.Unlock()
		return err
	}

	var err error
	success := "Product added."
	if id == "" {
		_, err = vm.api.CreateProduct(ctx, draft)
	} else {
		_, err = vm.api.UpdateProduct(ctx, id, draft)
		success = "Product updated."
	}

	vm.mu.Lock()
	if err != nil {
		vm.setNotice(NoticeDanger, message(err, "Failed to save product."))
		vm.mu.Unlock()
		return err
	}
	vm.dialog.Close()
	vm.setNotice(NoticeSuccess, success)
	size := vm.query.PageSize()
	vm.mu.Unlock()

	return vm.load(ctx, 1, size, true)
}

// SetStatusOne changes a single product's status. Inactive is the soft delete.
func (vm *ProductsViewModel) SetStatusOne(ctx context.Context, id string, status models.Status) error {
	return vm.setStatusOne(ctx, id, status, false)
}

func (vm *ProductsViewModel) setStatusOne(ctx context.Context, id string, status models.Status, closeDialog bool) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	err := vm.api.SetProductStatus(ctx, id, status)

	vm.mu.Lock()
	if err != nil {
		vm.setNotice(NoticeDanger, message(err, "Failed to update product."))
		vm.mu.Unlock()
		return err
	}
	if status == models.StatusInactive {
		vm.setNotice(NoticeInfo, "Product set to Inactive.")
	} else {
		vm.setNotice(NoticeSuccess, "Product activated.")
	}
	if closeDialog {
		vm.dialog.Close()
	}
	page, size := vm.query.Page(), vm.query.PageSize()
	vm.mu.Unlock()

	return vm.load(ctx, page, size, false)
}

// BulkSetStatus applies status to the known ids among ids. With none left it does nothing.
func (vm *ProductsViewModel) BulkSetStatus(ctx context.Context, ids []string, status models.Status) error {
	switch status {
	case models.StatusActive:
		return vm.bulk(ctx, ids, status, NoticeSuccess, "Selected products activated.", "Failed to activate selected.")
	case models.StatusInactive:
		return vm.bulk(ctx, ids, status, NoticeSuccess, "Selected products deactivated.", "Failed to deactivate selected.")
	}
	return ErrInvalidStatus
}

func (vm *ProductsViewModel) ActivateSelected(ctx context.Context) error {
	return vm.BulkSetStatus(ctx, vm.SelectedIDs(), models.StatusActive)
}

func (vm *ProductsViewModel) DeactivateSelected(ctx context.Context) error {
	return vm.BulkSetStatus(ctx, vm.SelectedIDs(), models.StatusInactive)
}

// SoftDeleteSelected is a bulk deactivation reported as a removal from the active catalog.
func (vm *ProductsViewModel) SoftDeleteSelected(ctx context.Context) error {
	return vm.bulk(ctx, vm.SelectedIDs(), models.StatusInactive, NoticeInfo, "Selected products set to Inactive.", "Failed to update selected.")
}

func (vm *ProductsViewModel) bulk(ctx context.Context, ids []string, status models.Status, kind NoticeKind, success, fallback string) error {
	vm.mu.Lock()
	ids = vm.selection.Known(ids)
	vm.mu.Unlock()
	if len(ids) == 0 {
		return nil
	}

	err := vm.api.BulkSetStatus(ctx, ids, status)

	vm.mu.Lock()
	if err != nil {
		vm.setNotice(NoticeDanger, message(err, fallback))
		vm.mu.Unlock()
		return err
	}
	vm.selection.Clear()
	vm.setNotice(kind, success)
	page, size := vm.query.Page(), vm.query.PageSize()
	vm.mu.Unlock()

	return vm.load(ctx, page, size, false)
}

// OpenAdd starts a new draft with the first known brand and category.
func (vm *ProductsViewModel) OpenAdd() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	defaults := models.ProductInput{
		Brand:             fallbackBrand,
		Category:          fallbackCategory,
		ThresholdQty:      1,
		LowStockThreshold: 5,
		Status:            models.StatusActive,
	}
	if len(vm.brands) > 0 {
		defaults.Brand = vm.brands[0]
	}
	if len(vm.categories) > 0 {
		defaults.Category = vm.categories[0]
	}
	return vm.dialog.OpenAdd(defaults)
}

func (vm *ProductsViewModel) OpenEdit(id string) error {
	return vm.withProduct(id, vm.dialog.OpenEdit)
}

func (vm *ProductsViewModel) OpenView(id string) error {
	return vm.withProduct(id, vm.dialog.OpenView)
}

func (vm *ProductsViewModel) RequestDelete(id string) error {
	return vm.withProduct(id, vm.dialog.RequestDelete)
}

func (vm *ProductsViewModel) withProduct(id string, open func(models.Product) error) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	p, ok := vm.query.find(id)
	if !ok {
		return ErrUnknownProduct
	}
	return open(p)
}

func (vm *ProductsViewModel) EditFromView() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.dialog.EditFromView()
}

func (vm *ProductsViewModel) UpdateDraft(fn func(*models.ProductInput)) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.dialog.UpdateDraft(fn)
}

func (vm *ProductsViewModel) Close() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.dialog.Close()
}

// SaveDraft submits the open add or edit dialog.
func (vm *ProductsViewModel) SaveDraft(ctx context.Context) error {
	vm.mu.Lock()
	state := vm.dialog.State()
	draft := vm.dialog.Draft()
	active, _ := vm.dialog.Active()
	vm.mu.Unlock()

	switch state {
	case Adding:
		return vm.AddProduct(ctx, draft)
	case Editing:
		return vm.EditProduct(ctx, active.ID, draft)
	}
	return ErrInvalidTransition
}

// ConfirmDelete soft-deletes the product awaiting confirmation.
func (vm *ProductsViewModel) ConfirmDelete(ctx context.Context) error {
	vm.mu.Lock()
	state := vm.dialog.State()
	active, _ := vm.dialog.Active()
	vm.mu.Unlock()

	if state != ConfirmingDelete {
		return ErrInvalidTransition
	}
	return vm.setStatusOne(ctx, active.ID, models.StatusInactive, true)
}

// BrandOptions lists the brand choices, starting with client.AllBrands.
func (vm *ProductsViewModel) BrandOptions() []string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return append([]string{client.AllBrands}, vm.brands...)
}

// CategoryOptions lists the category choices, starting with client.AllCategories.
func (vm *ProductsViewModel) CategoryOptions() []string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return append([]string{client.AllCategories}, vm.categories...)
}

func (vm *ProductsViewModel) Snapshot() Snapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	rows := make([]Row, len(vm.query.items))
	for i, p := range vm.query.items {
		rows[i] = Row{Product: p, Flag: p.StockFlag(), Selected: vm.selection.IsSelected(p.ID)}
	}

	s := Snapshot{
		Rows:        rows,
		Total:       vm.query.Total(),
		Page:        vm.query.Page(),
		PageSize:    vm.query.PageSize(),
		TotalPages:  vm.query.TotalPages(),
		Criteria:    vm.query.Criteria(),
		Brands:      append([]string{client.AllBrands}, vm.brands...),
		Categories:  append([]string{client.AllCategories}, vm.categories...),
		SelectedIDs: vm.selection.SelectedIDs(),
		AllSelected: vm.selection.AllSelected(vm.visibleIDs()),
		Dialog:      vm.dialog.State(),
		Draft:       vm.dialog.Draft(),
	}
	if p, ok := vm.dialog.Active(); ok {
		s.Active = &p
	}
	if vm.notice != nil {
		n := *vm.notice
		s.Notice = &n
	}
	return s
}

// IsStale reports whether err only means a newer load superseded this one.
func IsStale(err error) bool {
	return errors.Is(err, ErrStaleResponse)
}
