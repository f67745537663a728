package measure

import (
	"sync"
	"time"
)

type DefaultMetric struct {
	mu      *sync.Mutex
	elapsed time.Duration
}

func (mt *DefaultMetric) SetDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.elapsed = elapsed
}

func (mt *DefaultMetric) Duration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return round(mt.elapsed)
}

type DefaultMeasure struct {
	mu     sync.Mutex
	jobs   map[string]Metric
	phases map[string]time.Duration
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		jobs:   make(map[string]Metric),
		phases: make(map[string]time.Duration),
	}
}

func (m *DefaultMeasure) AddJob(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()
	mt := &DefaultMetric{mu: &sync.Mutex{}}
	m.jobs[name] = mt

	return mt
}

func (m *DefaultMeasure) GetJob(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.jobs[name]
}

func (m *DefaultMeasure) AllJobs() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make(map[string]Metric, len(m.jobs))
	for name, mt := range m.jobs {
		all[name] = mt
	}

	return all
}

func (m *DefaultMeasure) SetPhaseDuration(phase string, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phases[phase] = elapsed
}

func (m *DefaultMeasure) PhaseDuration(phase string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return round(m.phases[phase])
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}

var _ Measure = (*DefaultMeasure)(nil)
