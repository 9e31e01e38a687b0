package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/khatasathi/inventory-admin/internal/models"
	"github.com/khatasathi/inventory-admin/internal/viewmodel"
)

type column struct {
	title string
	width int
}

var productColumns = []column{
	{"", 3},
	{"Name", 22},
	{"SKU", 12},
	{"Brand", 12},
	{"Category", 12},
	{"Retail (NPR)", 13},
	{"Wholesale (NPR)", 15},
	{"Stock", 6},
	{"Flag", 12},
	{"Status", 8},
}

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenLogin:
		return m.viewLogin()
	case screenDashboard:
		return m.viewDashboard()
	default:
		return m.viewProducts()
	}
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("KhataSathi"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Sign in to manage your inventory"))
	b.WriteString("\n\n")
	b.WriteString(m.label("Username", m.loginFocus == 0) + m.username.View() + "\n")
	b.WriteString(m.label("Password", m.loginFocus == 1) + m.password.View() + "\n")
	if m.loginErr != "" {
		b.WriteString("\n" + m.theme.NoticeError.Render(m.loginErr) + "\n")
	}
	if m.busy > 0 {
		b.WriteString("\n" + m.spinner.View() + " Signing in…\n")
	}
	b.WriteString("\n" + m.theme.Muted.Render("enter sign in • tab switch field • esc quit"))
	return m.theme.Box.Render(b.String())
}

func (m Model) label(text string, focused bool) string {
	if focused {
		return m.theme.FocusField.Render(text)
	}
	return m.theme.Field.Render(text)
}

func (m Model) viewProducts() string {
	snap := m.products.Snapshot()

	var b strings.Builder
	title := m.theme.Title.Render("Products")
	if m.busy > 0 {
		title += " " + m.spinner.View()
	}
	b.WriteString(title + "\n")
	b.WriteString(m.renderFilters(snap) + "\n\n")
	b.WriteString(m.renderTable(snap) + "\n")
	b.WriteString(m.renderPager(snap) + "\n")

	if n := m.renderNotice(snap.Notice); n != "" {
		b.WriteString("\n" + n + "\n")
	}
	if d := m.renderDialog(snap); d != "" {
		b.WriteString("\n" + d + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keymap))
	return b.String()
}

func (m Model) renderFilters(snap viewmodel.Snapshot) string {
	c := snap.Criteria
	query := c.Query
	if m.searching {
		query = m.search.View()
	} else if query == "" {
		query = m.theme.Muted.Render("(none)")
	}
	low := "off"
	if c.LowOnly {
		low = "on"
	}
	parts := []string{
		"Search: " + query,
		"Brand: " + c.Brand,
		"Category: " + c.Category,
		"Stock: " + c.StockStatus,
		"Status: " + c.Status,
		"Low only: " + low,
	}
	return strings.Join(parts, m.theme.Muted.Render("  │  "))
}

func (m Model) renderTable(snap viewmodel.Snapshot) string {
	if len(snap.Rows) == 0 {
		return m.theme.Muted.Render("No products match these filters.")
	}

	header := make([]string, len(productColumns))
	for i, col := range productColumns {
		header[i] = m.theme.Header.Width(col.width + 2).Render(col.title)
	}
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for i, row := range snap.Rows {
		check := "[ ]"
		if row.Selected {
			check = "[x]"
		}
		cells := []string{
			check,
			row.Name,
			row.SKU,
			row.Brand,
			row.Category,
			viewmodel.FormatNPR(row.RetailPrice),
			viewmodel.FormatNPR(row.WholesalePrice),
			strconv.Itoa(row.Stock),
			string(row.Flag),
			string(row.Status),
		}
		rendered := make([]string, len(cells))
		for j, cell := range cells {
			style := m.theme.Cell.Width(productColumns[j].width + 2)
			switch {
			case j == 8:
				style = style.Inherit(m.flagStyle(row.Flag))
			case row.Status == models.StatusInactive:
				style = style.Inherit(m.theme.Inactive)
			}
			rendered[j] = style.Render(truncate(cell, productColumns[j].width))
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
		if i == m.cursor {
			line = m.theme.Cursor.Render("›") + line
		} else {
			line = " " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) flagStyle(flag models.StockFlag) lipgloss.Style {
	switch flag {
	case models.OutOfStock:
		return m.theme.FlagOut
	case models.LowStock:
		return m.theme.FlagLow
	default:
		return m.theme.FlagIn
	}
}

func (m Model) renderPager(snap viewmodel.Snapshot) string {
	pager := fmt.Sprintf("Page %d of %d • %d products • %d per page", snap.Page, snap.TotalPages, snap.Total, snap.PageSize)
	if n := len(snap.SelectedIDs); n > 0 {
		pager += fmt.Sprintf(" • %d selected", n)
	}
	return m.theme.Muted.Render(pager)
}

func (m Model) renderNotice(n *viewmodel.Notice) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case viewmodel.NoticeDanger:
		return m.theme.NoticeError.Render("✗ " + n.Message)
	case viewmodel.NoticeSuccess:
		return m.theme.NoticeOK.Render("✓ " + n.Message)
	default:
		return m.theme.NoticeInfo.Render("ℹ " + n.Message)
	}
}

func (m Model) renderDialog(snap viewmodel.Snapshot) string {
	switch snap.Dialog {
	case viewmodel.Adding, viewmodel.Editing:
		return m.renderForm(snap.Dialog)
	case viewmodel.Viewing:
		if snap.Active == nil {
			return ""
		}
		return m.theme.Box.Render(m.renderDetail(*snap.Active) + "\n\n" +
			m.theme.Muted.Render("e edit • esc close"))
	case viewmodel.ConfirmingDelete:
		if snap.Active == nil {
			return ""
		}
		body := fmt.Sprintf("Set %q (%s) to Inactive?\nThe product stays in the catalog and can be activated again.",
			snap.Active.Name, snap.Active.SKU)
		return m.theme.Box.Render(body + "\n\n" + m.theme.Muted.Render("y confirm • n/esc cancel"))
	}
	return ""
}

func (m Model) renderForm(state viewmodel.DialogState) string {
	if m.form == nil {
		return ""
	}
	title := "Add Product"
	if state == viewmodel.Editing {
		title = "Edit Product"
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(title) + "\n")
	for i, f := range m.form.fields {
		b.WriteString(m.label(f.label, i == m.form.focus) + f.input.View() + "\n")
	}
	if m.form.err != "" {
		b.WriteString("\n" + m.theme.NoticeError.Render(m.form.err) + "\n")
	}
	b.WriteString("\n" + m.theme.Muted.Render("ctrl+s save • tab next field • esc cancel"))
	return m.theme.Box.Render(b.String())
}

func (m Model) renderDetail(p models.Product) string {
	rows := [][2]string{
		{"Name", p.Name},
		{"SKU", p.SKU},
		{"Barcode", models.StringValue(p.Barcode)},
		{"Image URL", models.StringValue(p.ImageURL)},
		{"Brand", p.Brand},
		{"Category", p.Category},
		{"Retail Price", viewmodel.FormatNPR(p.RetailPrice)},
		{"Wholesale Price", viewmodel.FormatNPR(p.WholesalePrice)},
		{"Wholesale Min Qty", strconv.Itoa(p.ThresholdQty)},
		{"Stock", strconv.Itoa(p.Stock)},
		{"Low Stock Threshold", strconv.Itoa(p.LowStockThreshold)},
		{"Stock Flag", m.flagStyle(p.StockFlag()).Render(string(p.StockFlag()))},
		{"Status", string(p.Status)},
	}
	lines := []string{m.theme.Title.Render(p.Name)}
	for _, r := range rows {
		value := r[1]
		if value == "" {
			value = m.theme.Muted.Render("—")
		}
		lines = append(lines, m.theme.Field.Render(r[0])+value)
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewDashboard() string {
	var b strings.Builder
	title := m.theme.Title.Render("Dashboard")
	if m.busy > 0 {
		title += " " + m.spinner.View()
	}
	b.WriteString(title + "\n")

	tiles := []string{}
	for _, k := range m.dashboard.KPIs() {
		tiles = append(tiles, m.theme.Tile.Render(m.theme.Muted.Render(k.Label)+"\n"+m.theme.TileValue.Render(k.Value)))
	}
	for i := 0; i < len(tiles); i += 4 {
		end := min(i+4, len(tiles))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles[i:end]...) + "\n")
	}

	b.WriteString("\n" + m.theme.Subtitle.Render("Stock alerts") + "\n")
	alerts := m.dashboard.Alerts()
	if len(alerts) == 0 {
		b.WriteString(m.theme.Muted.Render("All active products are in stock.") + "\n")
	}
	for _, a := range alerts {
		tag := m.theme.FlagLow.Render(a.Tag)
		if a.Tag == "CRITICAL" {
			tag = m.theme.FlagOut.Render(a.Tag)
		}
		fmt.Fprintf(&b, "%-10s %-24s %-12s stock %d / %d\n", tag, truncate(a.Name, 24), a.SKU, a.Stock, a.LowStockThreshold)
	}

	if n, ok := m.dashboard.Notice(); ok {
		b.WriteString("\n" + m.renderNotice(&n) + "\n")
	}
	b.WriteString("\n" + m.theme.Muted.Render("r refresh • tab/esc products • q quit"))
	return b.String()
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
