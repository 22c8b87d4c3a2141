package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// refreshViewMsg tells views to reload their data from the store and the
// planning service. Broadcast to the whole stack after mutations.
type refreshViewMsg struct{}

// noticeMsg shows a transient banner line above the status bar.
type noticeMsg struct {
	text  string
	isErr bool
}

// noticeExpireMsg dismisses the banner; stale timers are ignored by seq.
type noticeExpireMsg struct{ seq int }

// flowDoneMsg reports a completed mutation: the appModel shows the banner
// and then broadcasts a refresh so every stacked view reloads.
type flowDoneMsg struct{ text string }

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

// notice returns a tea.Cmd that shows a transient banner.
func notice(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}

// errNotice returns a tea.Cmd that shows a transient error banner.
func errNotice(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text, isErr: true} }
}
