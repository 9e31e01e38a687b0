package viewmodel

import (
	"context"
	"errors"
	"testing"

	"github.com/khatasathi/inventory-admin/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardAPI struct {
	kpis      client.DashboardKPIs
	alerts    []client.StockAlert
	err       error
	lastLimit int
}

func (f *fakeDashboardAPI) DashboardKPIs(context.Context) (client.DashboardKPIs, error) {
	return f.kpis, f.err
}

func (f *fakeDashboardAPI) StockAlerts(_ context.Context, limit int) ([]client.StockAlert, error) {
	f.lastLimit = limit
	return f.alerts, f.err
}

func TestDashboardLoad(t *testing.T) {
	api := &fakeDashboardAPI{
		kpis:   client.DashboardKPIs{TotalProducts: 4, ActiveProducts: 3, InventoryRetailValue: 1250.5},
		alerts: []client.StockAlert{{ProductID: "p1", Tag: "CRITICAL"}},
	}
	d := NewDashboardViewModel(api, 5)

	require.NoError(t, d.Load(context.Background()))
	assert.Equal(t, 5, api.lastLimit)
	kpis := d.KPIs()
	assert.Equal(t, KPI{Label: "Total Products", Value: "4"}, kpis[0])
	assert.Equal(t, KPI{Label: "Retail Value", Value: "Rs 1250.50"}, kpis[5])
	assert.Len(t, d.Alerts(), 1)
}

func TestDashboardLoadFailureKeepsData(t *testing.T) {
	api := &fakeDashboardAPI{kpis: client.DashboardKPIs{TotalProducts: 2}}
	d := NewDashboardViewModel(api, 5)
	require.NoError(t, d.Load(context.Background()))

	api.err = errors.New("boom")
	api.kpis = client.DashboardKPIs{}
	require.Error(t, d.Load(context.Background()))

	assert.Equal(t, "2", d.KPIs()[0].Value)
	n, ok := d.Notice()
	require.True(t, ok)
	assert.Equal(t, "Failed to load dashboard.", n.Message)
}

type fakeLoginAPI struct {
	calls int
	err   error
}

func (f *fakeLoginAPI) Login(_ context.Context, username, password string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "token-" + username, nil
}

func TestLoginForm(t *testing.T) {
	api := &fakeLoginAPI{}

	_, err := LoginForm{Username: "admin", Password: "abc"}.Submit(context.Background(), api)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Zero(t, api.calls)

	token, err := LoginForm{Username: " admin ", Password: "abcd"}.Submit(context.Background(), api)
	require.NoError(t, err)
	assert.Equal(t, "token-admin", token)

	api.err = &client.RequestError{Status: 401, Message: "Invalid username or password"}
	_, err = LoginForm{Username: "admin", Password: "wrong"}.Submit(context.Background(), api)
	assert.EqualError(t, err, "Invalid username or password")
}
