package system

import "time"

// Metrics provides runtime metrics for a system
type Metrics struct {
	Name              string
	UpdateCount       uint64
	TotalUpdateTime   time.Duration
	LastUpdateTime    time.Duration
	MaxUpdateTime     time.Duration
	LastExecutionTime time.Time
}

// ManagerMetrics provides system manager statistics
type ManagerMetrics struct {
	RegisteredSystems int
	Frames            uint64
	TotalUpdateTime   time.Duration
	LastUpdateTime    time.Duration
	AverageUpdateTime time.Duration
	LastFrameStart    time.Time
}

func (m *Metrics) observe(d time.Duration, at time.Time) {
	m.UpdateCount++
	m.TotalUpdateTime += d
	m.LastUpdateTime = d
	m.MaxUpdateTime = max(m.MaxUpdateTime, d)
	m.LastExecutionTime = at
}

func (m *ManagerMetrics) observe(d time.Duration, at time.Time) {
	m.Frames++
	m.TotalUpdateTime += d
	m.LastUpdateTime = d
	m.AverageUpdateTime = m.TotalUpdateTime / time.Duration(m.Frames)
	m.LastFrameStart = at
}

// Metrics returns a snapshot of the manager counters.
func (m *Manager) Metrics() ManagerMetrics {
	out := m.metrics
	out.RegisteredSystems = len(m.entries)
	return out
}

// SystemMetrics returns the counters of every system in update order.
func (m *Manager) SystemMetrics() []Metrics {
	out := make([]Metrics, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.metrics
		out[i].Name = e.name
	}
	return out
}
