package viewmodel

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/khatasathi/inventory-admin/internal/client"
)

type DashboardAPI interface {
	DashboardKPIs(ctx context.Context) (client.DashboardKPIs, error)
	StockAlerts(ctx context.Context, limit int) ([]client.StockAlert, error)
}

// KPI is one labelled dashboard figure.
type KPI struct {
	Label string
	Value string
}

// DashboardViewModel loads the KPI tiles and stock alerts.
type DashboardViewModel struct {
	api   DashboardAPI
	limit int

	mu     sync.Mutex
	kpis   client.DashboardKPIs
	alerts []client.StockAlert
	notice *Notice
}

func NewDashboardViewModel(api DashboardAPI, alertLimit int) *DashboardViewModel {
	return &DashboardViewModel{api: api, limit: alertLimit}
}

// Load fetches both panels. State is only replaced when both calls succeed.
func (d *DashboardViewModel) Load(ctx context.Context) error {
	kpis, err := d.api.DashboardKPIs(ctx)
	if err == nil {
		var alerts []client.StockAlert
		alerts, err = d.api.StockAlerts(ctx, d.limit)
		if err == nil {
			d.mu.Lock()
			d.kpis = kpis
			d.alerts = alerts
			d.notice = nil
			d.mu.Unlock()
			return nil
		}
	}

	d.mu.Lock()
	d.notice = &Notice{Kind: NoticeDanger, Message: message(err, "Failed to load dashboard.")}
	d.mu.Unlock()
	return err
}

func (d *DashboardViewModel) KPIs() []KPI {
	d.mu.Lock()
	defer d.mu.Unlock()
	k := d.kpis
	return []KPI{
		{Label: "Total Products", Value: strconv.Itoa(k.TotalProducts)},
		{Label: "Active", Value: strconv.Itoa(k.ActiveProducts)},
		{Label: "Inactive", Value: strconv.Itoa(k.InactiveProducts)},
		{Label: "Low Stock", Value: strconv.Itoa(k.LowStockCount)},
		{Label: "Out of Stock", Value: strconv.Itoa(k.OutOfStockCount)},
		{Label: "Retail Value", Value: FormatNPR(k.InventoryRetailValue)},
		{Label: "Wholesale Value", Value: FormatNPR(k.InventoryWholesaleValue)},
	}
}

func (d *DashboardViewModel) Alerts() []client.StockAlert {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]client.StockAlert, len(d.alerts))
	copy(out, d.alerts)
	return out
}

func (d *DashboardViewModel) Notice() (Notice, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.notice == nil {
		return Notice{}, false
	}
	return *d.notice, true
}

// FormatNPR renders an amount in Nepalese rupees.
func FormatNPR(v float64) string {
	return fmt.Sprintf("Rs %.2f", v)
}
