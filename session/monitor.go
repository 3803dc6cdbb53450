package session

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// Inactivity watchdog defaults: the session is force-expired after
// IdleThreshold without recognized activity, checked every PollInterval.
const (
	IdleThreshold = 2 * time.Minute
	PollInterval  = 30 * time.Second
)

// Monitor is the inactivity watchdog. It has two states: off (initial,
// and after logout or expiry) and active (while a session is
// authenticated). While active, RecordActivity advances the last-activity
// timestamp and a periodic check force-expires the session once the idle
// threshold is reached.
type Monitor struct {
	mu           sync.Mutex
	clock        Clock
	threshold    time.Duration
	interval     time.Duration
	log          *slog.Logger
	onExpire     func()
	active       bool
	lastActivity time.Time
	stop         chan struct{}
}

// MonitorOption configures a Monitor.
type MonitorOption func(*Monitor)

// WithMonitorClock sets the clock used for idle measurement.
func WithMonitorClock(clock Clock) MonitorOption {
	return func(m *Monitor) { m.clock = clock }
}

// WithMonitorLogger sets the structured logger.
func WithMonitorLogger(logger *slog.Logger) MonitorOption {
	return func(m *Monitor) { m.log = logger }
}

// WithIdleThreshold overrides the idle threshold.
func WithIdleThreshold(d time.Duration) MonitorOption {
	return func(m *Monitor) { m.threshold = d }
}

// WithPollInterval overrides the check interval.
func WithPollInterval(d time.Duration) MonitorOption {
	return func(m *Monitor) { m.interval = d }
}

// NewMonitor creates a monitor in the off state. onExpire runs once per
// idle expiry, after the monitor has stopped itself.
func NewMonitor(onExpire func(), opts ...MonitorOption) *Monitor {
	m := &Monitor{
		clock:     RealClock{},
		threshold: IdleThreshold,
		interval:  PollInterval,
		onExpire:  onExpire,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return m
}

// Start enters the active state and launches the polling loop. Starting
// an already-active monitor is a no-op: at most one polling loop exists.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active {
		return
	}
	m.active = true
	m.lastActivity = m.clock.Now()
	m.stop = make(chan struct{})
	go m.loop(m.stop)
	m.log.Debug("inactivity monitoring started")
}

// Stop leaves the active state and halts the polling loop. Stopping an
// inactive monitor is a no-op.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
}

func (m *Monitor) stopLocked() {
	if !m.active {
		return
	}
	m.active = false
	close(m.stop)
	m.stop = nil
	m.log.Debug("inactivity monitoring stopped")
}

// Active reports whether the monitor is in the active state.
func (m *Monitor) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// RecordActivity resets the idle window. Activity while the monitor is
// off is ignored.
func (m *Monitor) RecordActivity() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active {
		m.lastActivity = m.clock.Now()
	}
}

// IdleFor returns the elapsed time since the last recorded activity.
func (m *Monitor) IdleFor() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.active {
		return 0
	}
	return m.clock.Now().Sub(m.lastActivity)
}

func (m *Monitor) loop(stop chan struct{}) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.check()
		}
	}
}

// check runs one poll. If the idle threshold has been reached the monitor
// stops itself and then invokes the expiry callback, outside the lock so
// the callback may re-enter the monitor.
func (m *Monitor) check() {
	m.mu.Lock()
	if !m.active {
		m.mu.Unlock()
		return
	}
	idle := m.clock.Now().Sub(m.lastActivity)
	if idle < m.threshold {
		m.mu.Unlock()
		return
	}
	m.stopLocked()
	m.mu.Unlock()

	m.log.Info("session expired due to inactivity", slog.Duration("idle", idle))
	if m.onExpire != nil {
		m.onExpire()
	}
}
