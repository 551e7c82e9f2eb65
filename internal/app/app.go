// Package app wires HTTP routes, session state and the control socket together.
package app

import (
	"errors"

	"github.com/frudas24/winsim/internal/config"
	"github.com/frudas24/winsim/internal/control"
	"github.com/frudas24/winsim/internal/monitor"
	"github.com/frudas24/winsim/internal/session"
	"github.com/frudas24/winsim/internal/simulate"
	"github.com/frudas24/winsim/internal/winmsg"
	"github.com/frudas24/winsim/internal/winproc"
)

// WindowAccess is the access requested when describing window owners.
const WindowAccess = winproc.QueryInformation | winproc.VMRead

// Deps are the native backends the app drives. Poster, Procs and Monitors are optional.
type Deps struct {
	Input    simulate.Input
	Poster   *winmsg.Poster
	Procs    *winproc.Host
	Monitors control.MonitorProvider
}

// App coordinates the HTTP API and the control websocket.
type App struct {
	cfg      config.Config
	session  *session.Session
	procs    *winproc.Host
	monitors control.MonitorProvider
	control  *control.Server
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, sess *session.Session, deps Deps) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if deps.Input == nil {
		return nil, errors.New("input is required")
	}

	return &App{
		cfg:      cfg,
		session:  sess,
		procs:    deps.Procs,
		monitors: deps.Monitors,
		control:  control.NewServer(sess, deps.Input, deps.Poster, deps.Monitors, cfg.Debug),
	}, nil
}

// ListMonitors returns the attached displays.
func (a *App) ListMonitors() ([]monitor.Monitor, error) {
	if a.monitors == nil {
		return nil, monitor.ErrNoMonitors
	}
	return a.monitors()
}

// ListWindows describes one window per process that can be inspected.
func (a *App) ListWindows() ([]winproc.WindowInfo, error) {
	if a.procs == nil {
		return nil, errors.New("window introspection unavailable")
	}
	return a.procs.Describe(WindowAccess, a.cfg.TextBuffer)
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}
