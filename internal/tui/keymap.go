package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	PageSize key.Binding

	// Filters
	Search      key.Binding
	Brand       key.Binding
	Category    key.Binding
	StockStatus key.Binding
	Status      key.Binding
	LowOnly     key.Binding
	Clear       key.Binding

	// Selection
	Toggle    key.Binding
	ToggleAll key.Binding

	// Actions
	Add        key.Binding
	Edit       key.Binding
	View       key.Binding
	Delete     key.Binding
	Activate   key.Binding
	Deactivate key.Binding
	SoftDelete key.Binding
	Confirm    key.Binding
	Save       key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Back       key.Binding
	Refresh    key.Binding

	// Application
	Dashboard key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		NextPage: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "next page")),
		PrevPage: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "prev page")),
		PageSize: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "page size")),

		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Brand:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "brand")),
		Category:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		StockStatus: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stock")),
		Status:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "status")),
		LowOnly:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "low only")),
		Clear:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),

		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),

		Add:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		View:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Activate:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "activate selected")),
		Deactivate: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "deactivate selected")),
		SoftDelete: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "delete selected")),
		Confirm:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		NextField:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),

		Dashboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "dashboard")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Add, k.Edit, k.View, k.Delete, k.Toggle, k.NextPage, k.Dashboard, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage, k.PageSize, k.Refresh},
		{k.Search, k.Brand, k.Category, k.StockStatus, k.Status, k.LowOnly, k.Clear},
		{k.Toggle, k.ToggleAll, k.Activate, k.Deactivate, k.SoftDelete},
		{k.Add, k.Edit, k.View, k.Delete, k.Dashboard, k.Quit},
	}
}
