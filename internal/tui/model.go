package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/khatasathi/inventory-admin/internal/models"
	"github.com/khatasathi/inventory-admin/internal/viewmodel"
)

type screen int

const (
	screenLogin screen = iota
	screenProducts
	screenDashboard
)

// API is everything the console needs from the backend.
type API interface {
	viewmodel.ProductsAPI
	viewmodel.DashboardAPI
	viewmodel.LoginAPI
}

// Config holds the console configuration.
type Config struct {
	API        API
	Theme      *Theme
	Timeout    time.Duration
	AlertLimit int
	Username   string
	// SkipLogin starts on the products screen; the API must already hold a token.
	SkipLogin bool
}

var (
	stockStatuses = []string{viewmodel.StockAll, viewmodel.StockIn, viewmodel.StockLow, viewmodel.StockOut}
	statusFilters = []string{viewmodel.StatusAll, viewmodel.StatusActive, viewmodel.StatusInactive}
)

// Model holds the console state. Product and dashboard state live in the view-models.
type Model struct {
	config    Config
	theme     Theme
	keymap    KeyMap
	help      help.Model
	spinner   spinner.Model
	products  *viewmodel.ProductsViewModel
	dashboard *viewmodel.DashboardViewModel

	username   textinput.Model
	password   textinput.Model
	loginFocus int
	loginErr   string

	search    textinput.Model
	searching bool
	form      *productForm

	screen   screen
	cursor   int
	busy     int
	width    int
	height   int
	quitting bool
}

func New(cfg Config) Model {
	cfg.Timeout = defaultTimeout(cfg.Timeout)
	if cfg.AlertLimit <= 0 {
		cfg.AlertLimit = 10
	}
	theme := DefaultTheme
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}

	username := textinput.New()
	username.Placeholder = "username"
	username.SetValue(cfg.Username)
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	search := textinput.New()
	search.Placeholder = "name, SKU or barcode"
	search.Prompt = "/ "

	m := Model{
		config:    cfg,
		theme:     theme,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		products:  viewmodel.NewProductsViewModel(cfg.API),
		dashboard: viewmodel.NewDashboardViewModel(cfg.API, cfg.AlertLimit),
		username:  username,
		password:  password,
		search:    search,
		screen:    screenLogin,
	}
	if cfg.SkipLogin {
		m.screen = screenProducts
		m.busy = 1
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.screen == screenProducts {
		return tea.Batch(m.spinner.Tick, m.run(m.products.Init))
	}
	return textinput.Blink
}

// start marks a command in flight and keeps the spinner ticking.
func (m *Model) start(cmd tea.Cmd) tea.Cmd {
	m.busy++
	if m.busy == 1 {
		return tea.Batch(cmd, m.spinner.Tick)
	}
	return cmd
}

func (m *Model) finish() {
	if m.busy > 0 {
		m.busy--
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.busy == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case actionDoneMsg:
		m.finish()
		m.syncForm()
		m.clampCursor()
		return m, nil

	case loginDoneMsg:
		m.finish()
		if msg.err != nil {
			m.loginErr = msg.err.Error()
			return m, nil
		}
		m.loginErr = ""
		m.password.SetValue("")
		m.screen = screenProducts
		return m, m.start(m.run(m.products.Init))

	case dashboardLoadedMsg:
		m.finish()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case screenLogin:
			return m.updateLogin(msg)
		case screenDashboard:
			return m.updateDashboard(msg)
		default:
			return m.updateProducts(msg)
		}
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.loginFocus = 1 - m.loginFocus
		if m.loginFocus == 0 {
			m.password.Blur()
			return m, m.username.Focus()
		}
		m.username.Blur()
		return m, m.password.Focus()
	case "enter":
		form := viewmodel.LoginForm{Username: m.username.Value(), Password: m.password.Value()}
		if !form.CanSubmit() {
			m.loginErr = "Enter a username and a password of at least 4 characters."
			return m, nil
		}
		return m, m.start(m.login(form))
	case "esc":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Dashboard), key.Matches(msg, m.keymap.Back):
		m.screen = screenProducts
	case key.Matches(msg, m.keymap.Refresh):
		return m, m.start(m.loadDashboard())
	}
	return m, nil
}

func (m Model) updateProducts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}

	switch m.products.Snapshot().Dialog {
	case viewmodel.Adding, viewmodel.Editing:
		return m.updateForm(msg)
	case viewmodel.Viewing:
		switch {
		case key.Matches(msg, m.keymap.Edit):
			if m.products.EditFromView() == nil {
				m.syncForm()
				return m, m.form.fields[0].input.Focus()
			}
		case key.Matches(msg, m.keymap.Back):
			m.products.Close()
		}
		return m, nil
	case viewmodel.ConfirmingDelete:
		switch {
		case key.Matches(msg, m.keymap.Confirm):
			return m, m.start(m.run(m.products.ConfirmDelete))
		case key.Matches(msg, m.keymap.Back), msg.String() == "n":
			m.products.Close()
		}
		return m, nil
	}

	return m.updateBrowse(msg)
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vm := m.products
	snap := vm.Snapshot()
	km := m.keymap

	switch {
	case key.Matches(msg, km.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, km.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, km.Back):
		vm.Dismiss()
	case key.Matches(msg, km.Dashboard):
		m.screen = screenDashboard
		return m, m.start(m.loadDashboard())

	case key.Matches(msg, km.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, km.Down):
		if m.cursor < len(snap.Rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, km.NextPage):
		m.cursor = 0
		return m, m.start(m.run(func(ctx context.Context) error { return vm.ChangePage(ctx, 1) }))
	case key.Matches(msg, km.PrevPage):
		m.cursor = 0
		return m, m.start(m.run(func(ctx context.Context) error { return vm.ChangePage(ctx, -1) }))
	case key.Matches(msg, km.PageSize):
		next := nextInt(viewmodel.PageSizes, snap.PageSize)
		return m, m.start(m.run(func(ctx context.Context) error { return vm.ChangePageSize(ctx, next) }))
	case key.Matches(msg, km.Refresh):
		return m, m.start(m.run(vm.Reload))

	case key.Matches(msg, km.Search):
		m.searching = true
		m.search.SetValue(snap.Criteria.Query)
		return m, m.search.Focus()
	case key.Matches(msg, km.Brand):
		next := nextString(snap.Brands, snap.Criteria.Brand)
		return m, m.start(m.run(func(ctx context.Context) error { return vm.SetBrand(ctx, next) }))
	case key.Matches(msg, km.Category):
		next := nextString(snap.Categories, snap.Criteria.Category)
		return m, m.start(m.run(func(ctx context.Context) error { return vm.SetCategory(ctx, next) }))
	case key.Matches(msg, km.StockStatus):
		next := nextString(stockStatuses, snap.Criteria.StockStatus)
		return m, m.start(m.run(func(ctx context.Context) error { return vm.SetStockStatus(ctx, next) }))
	case key.Matches(msg, km.Status):
		next := nextString(statusFilters, snap.Criteria.Status)
		return m, m.start(m.run(func(ctx context.Context) error { return vm.SetStatusFilter(ctx, next) }))
	case key.Matches(msg, km.LowOnly):
		lowOnly := !snap.Criteria.LowOnly
		return m, m.start(m.run(func(ctx context.Context) error { return vm.SetLowOnly(ctx, lowOnly) }))
	case key.Matches(msg, km.Clear):
		return m, m.start(m.run(vm.ClearFilters))

	case key.Matches(msg, km.Toggle):
		if row, ok := m.currentRow(snap); ok {
			vm.ToggleOne(row.ID, !row.Selected)
		}
	case key.Matches(msg, km.ToggleAll):
		vm.ToggleAll(!snap.AllSelected)
	case key.Matches(msg, km.Activate):
		return m, m.start(m.run(vm.ActivateSelected))
	case key.Matches(msg, km.Deactivate):
		return m, m.start(m.run(vm.DeactivateSelected))
	case key.Matches(msg, km.SoftDelete):
		return m, m.start(m.run(vm.SoftDeleteSelected))

	case key.Matches(msg, km.Add):
		if vm.OpenAdd() == nil {
			m.syncForm()
			return m, m.form.fields[0].input.Focus()
		}
	case key.Matches(msg, km.Edit):
		if row, ok := m.currentRow(snap); ok && vm.OpenEdit(row.ID) == nil {
			m.syncForm()
			return m, m.form.fields[0].input.Focus()
		}
	case key.Matches(msg, km.View):
		if row, ok := m.currentRow(snap); ok {
			_ = vm.OpenView(row.ID)
		}
	case key.Matches(msg, km.Delete):
		if row, ok := m.currentRow(snap); ok {
			_ = vm.RequestDelete(row.ID)
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		q := m.search.Value()
		m.cursor = 0
		return m, m.start(m.run(func(ctx context.Context) error { return m.products.SetQuery(ctx, q) }))
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.syncForm()
	}
	f := m.form

	switch {
	case key.Matches(msg, m.keymap.Back):
		m.products.Close()
		m.form = nil
		return m, nil
	case key.Matches(msg, m.keymap.NextField):
		return m, f.move(1)
	case key.Matches(msg, m.keymap.PrevField):
		return m, f.move(-1)
	case key.Matches(msg, m.keymap.Save):
		var applyErr error
		if err := m.products.UpdateDraft(func(in *models.ProductInput) { applyErr = f.apply(in) }); err != nil {
			return m, nil
		}
		if applyErr != nil {
			f.err = applyErr.Error()
			return m, nil
		}
		f.err = ""
		return m, m.start(m.run(m.products.SaveDraft))
	}
	return m, f.update(msg)
}

// syncForm opens or drops the form to match the dialog state.
func (m *Model) syncForm() {
	snap := m.products.Snapshot()
	switch snap.Dialog {
	case viewmodel.Adding, viewmodel.Editing:
		if m.form == nil {
			f := newProductForm(snap.Draft)
			m.form = &f
		}
	default:
		m.form = nil
	}
}

func (m *Model) clampCursor() {
	n := len(m.products.Snapshot().Rows)
	if m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

func (m Model) currentRow(snap viewmodel.Snapshot) (viewmodel.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(snap.Rows) {
		return viewmodel.Row{}, false
	}
	return snap.Rows[m.cursor], true
}

func nextString(options []string, current string) string {
	if len(options) == 0 {
		return current
	}
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func nextInt(options []int, current int) int {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
