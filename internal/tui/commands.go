package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/khatasathi/inventory-admin/internal/viewmodel"
)

// run executes fn against the API with the configured timeout.
func (m Model) run(fn func(ctx context.Context) error) tea.Cmd {
	timeout := m.config.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return actionDoneMsg{err: fn(ctx)}
	}
}

func (m Model) login(form viewmodel.LoginForm) tea.Cmd {
	api, timeout := m.config.API, m.config.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		token, err := form.Submit(ctx, api)
		return loginDoneMsg{token: token, err: err}
	}
}

func (m Model) loadDashboard() tea.Cmd {
	dash, timeout := m.dashboard, m.config.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return dashboardLoadedMsg{err: dash.Load(ctx)}
	}
}

func defaultTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 10 * time.Second
	}
	return d
}
