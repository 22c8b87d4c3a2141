package cli

import (
	"testing"

	"github.com/alexmorozov/lachesis/internal/gateway"
	"github.com/alexmorozov/lachesis/internal/store"
	"github.com/alexmorozov/lachesis/internal/teatest"
	"github.com/alexmorozov/lachesis/internal/workflow"
)

// TestDriver wraps teatest.Driver with inspection methods for appModel
// internals (view stack, shared state, banner) that the generic driver
// can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel over the given App, sets the terminal
// size, and drains Init (which loads the dashboard against the stub
// service synchronously).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	return &TestDriver{Driver: teatest.New(t, newAppModel(app), 120, 40)}
}

// newTestApp wires an App over a stub planning service.
func newTestApp(api gateway.API) *App {
	return &App{
		Flows:         workflow.New(api, store.New(8)),
		IsInteractive: func() bool { return false },
	}
}

func (d *TestDriver) appModel() *appModel {
	m := d.Model.(appModel)
	return &m
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	v := d.appModel().activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	v := d.appModel().activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Notice returns the current banner text.
func (d *TestDriver) Notice() string {
	return d.appModel().notice
}

// NoticeIsError reports whether the current banner is an error banner.
func (d *TestDriver) NoticeIsError() bool {
	return d.appModel().noticeErr
}

// IsQuitting reports whether the app has signaled a quit, either via
// model state (q, ctrl+c) or a tea.QuitMsg seen by the driver.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
