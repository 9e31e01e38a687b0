package tui

import (
	"context"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/khatasathi/inventory-admin/internal/client"
	"github.com/khatasathi/inventory-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	mu       sync.Mutex
	products []models.Product
	created  []models.ProductInput
	statuses map[string]models.Status
	loginErr error
}

func newStubAPI() *stubAPI {
	api := &stubAPI{statuses: map[string]models.Status{}}
	for i := 1; i <= 3; i++ {
		api.products = append(api.products, models.Product{
			ID:                fmt.Sprintf("p%d", i),
			Name:              fmt.Sprintf("Noodles %d", i),
			SKU:               fmt.Sprintf("N-%d", i),
			Brand:             "CG Foods",
			Category:          "Groceries",
			Stock:             i * 2,
			LowStockThreshold: 3,
			Status:            models.StatusActive,
		})
	}
	return api
}

func (s *stubAPI) ListProducts(_ context.Context, q client.ProductsQuery) (client.ProductPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.Product, len(s.products))
	copy(items, s.products)
	return client.ProductPage{Items: items, Total: len(items)}, nil
}

func (s *stubAPI) ProductsMeta(context.Context) (client.ProductsMeta, error) {
	return client.ProductsMeta{Brands: []string{"CG Foods"}, Categories: []string{"Groceries"}}, nil
}

func (s *stubAPI) CreateProduct(_ context.Context, in models.ProductInput) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, in)
	p := in.Product(fmt.Sprintf("new%d", len(s.created)))
	s.products = append(s.products, p)
	return p, nil
}

func (s *stubAPI) UpdateProduct(_ context.Context, id string, in models.ProductInput) (models.Product, error) {
	return in.Product(id), nil
}

func (s *stubAPI) SetProductStatus(_ context.Context, id string, status models.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[id] = status
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Status = status
		}
	}
	return nil
}

func (s *stubAPI) BulkSetStatus(_ context.Context, ids []string, status models.Status) error {
	for _, id := range ids {
		_ = s.SetProductStatus(context.Background(), id, status)
	}
	return nil
}

func (s *stubAPI) DashboardKPIs(context.Context) (client.DashboardKPIs, error) {
	return client.DashboardKPIs{TotalProducts: 3, ActiveProducts: 3}, nil
}

func (s *stubAPI) StockAlerts(context.Context, int) ([]client.StockAlert, error) {
	return []client.StockAlert{{ProductID: "p1", Name: "Noodles 1", SKU: "N-1", Stock: 2, LowStockThreshold: 3, Tag: "LOW"}}, nil
}

func (s *stubAPI) Login(_ context.Context, username, password string) (string, error) {
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return "token", nil
}

// drain runs cmd and feeds back the messages produced by API commands.
// Cursor blink and spinner ticks are dropped.
func drain(m tea.Model, cmd tea.Cmd) tea.Model {
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(m, c)
		}
	case actionDoneMsg, loginDoneMsg, dashboardLoadedMsg:
		var next tea.Cmd
		m, next = m.Update(msg)
		m = drain(m, next)
	}
	return m
}

func press(m tea.Model, k string) (tea.Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		msg = tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	return m.Update(msg)
}

func startedModel(t *testing.T, api *stubAPI) tea.Model {
	t.Helper()
	m := New(Config{API: api, SkipLogin: true})
	return drain(m, m.Init())
}

func TestLoginShowsProducts(t *testing.T) {
	api := newStubAPI()
	var m tea.Model = New(Config{API: api, Username: "admin"})

	m, _ = press(m, "tab")
	m, _ = press(m, "secret")
	m, cmd := press(m, "enter")
	m = drain(m, cmd)

	view := m.View()
	assert.Contains(t, view, "Products")
	assert.Contains(t, view, "Noodles 1")
}

func TestLoginRejectsShortPassword(t *testing.T) {
	var m tea.Model = New(Config{API: newStubAPI(), Username: "admin"})

	m, _ = press(m, "tab")
	m, _ = press(m, "abc")
	m, cmd := press(m, "enter")

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "at least 4 characters")
}

func TestLoginErrorIsShown(t *testing.T) {
	api := newStubAPI()
	api.loginErr = &client.RequestError{Status: 401, Message: "Invalid username or password"}
	var m tea.Model = New(Config{API: api, Username: "admin"})

	m, _ = press(m, "tab")
	m, _ = press(m, "wrong-pass")
	m, cmd := press(m, "enter")
	m = drain(m, cmd)

	assert.Contains(t, m.View(), "Invalid username or password")
}

func TestConfirmDeleteSetsInactive(t *testing.T) {
	api := newStubAPI()
	m := startedModel(t, api)

	m, _ = press(m, "d")
	assert.Contains(t, m.View(), "to Inactive?")

	m, cmd := press(m, "y")
	m = drain(m, cmd)

	assert.Equal(t, models.StatusInactive, api.statuses["p1"])
	view := m.View()
	assert.Contains(t, view, "Product set to Inactive.")
	assert.Contains(t, view, "Noodles 1")
}

func TestAddProductFromForm(t *testing.T) {
	api := newStubAPI()
	m := startedModel(t, api)

	m, _ = press(m, "n")
	assert.Contains(t, m.View(), "Add Product")

	m, _ = press(m, "Masala Tea")
	m, _ = press(m, "tab")
	m, _ = press(m, "TEA-1")
	m, cmd := press(m, "ctrl+s")
	m = drain(m, cmd)

	require.Len(t, api.created, 1)
	assert.Equal(t, "Masala Tea", api.created[0].Name)
	assert.Equal(t, "TEA-1", api.created[0].SKU)
	assert.Equal(t, 5, api.created[0].LowStockThreshold)

	view := m.View()
	assert.Contains(t, view, "Product added.")
	assert.NotContains(t, view, "Add Product")
}

func TestFormRejectsBadNumber(t *testing.T) {
	api := newStubAPI()
	m := startedModel(t, api)

	m, _ = press(m, "n")
	m, _ = press(m, "Tea")
	for i := 0; i < 6; i++ {
		m, _ = press(m, "tab")
	}
	m, _ = press(m, "abc")
	m, cmd := press(m, "ctrl+s")

	assert.Nil(t, cmd)
	assert.Empty(t, api.created)
	assert.Contains(t, m.View(), "must be a number")
}

func TestSelectAndDeactivate(t *testing.T) {
	api := newStubAPI()
	m := startedModel(t, api)

	m, _ = press(m, " ")
	m, _ = press(m, "j")
	m, _ = press(m, " ")
	assert.Contains(t, m.View(), "2 selected")

	m, cmd := press(m, "D")
	m = drain(m, cmd)

	assert.Equal(t, models.StatusInactive, api.statuses["p1"])
	assert.Equal(t, models.StatusInactive, api.statuses["p2"])
	assert.NotContains(t, m.View(), "2 selected")
	assert.Contains(t, m.View(), "Selected products deactivated.")
}

func TestDashboardScreen(t *testing.T) {
	m := startedModel(t, newStubAPI())

	m, cmd := press(m, "tab")
	m = drain(m, cmd)

	view := m.View()
	assert.Contains(t, view, "Dashboard")
	assert.Contains(t, view, "Total Products")
	assert.Contains(t, view, "Noodles 1")
	assert.Contains(t, view, "Rs 0.00")
}
