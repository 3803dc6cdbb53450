package session

import "log/slog"

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the clock shared by the manager and its monitor.
func WithClock(clock Clock) Option {
	return func(m *Manager) { m.clock = clock }
}

// WithNavigator sets the navigation port. Defaults to a NavRecorder.
func WithNavigator(nav Navigator) Option {
	return func(m *Manager) { m.nav = nav }
}

// WithLogger sets the structured logger for session lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.log = logger }
}

// WithMonitorOptions forwards options to the inactivity monitor, on top
// of the manager's clock and logger.
func WithMonitorOptions(opts ...MonitorOption) Option {
	return func(m *Manager) { m.monitorOpts = append(m.monitorOpts, opts...) }
}
