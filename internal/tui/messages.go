package tui

// actionDoneMsg reports the end of a view-model command.
type actionDoneMsg struct {
	err error
}

type loginDoneMsg struct {
	token string
	err   error
}

type dashboardLoadedMsg struct {
	err error
}
