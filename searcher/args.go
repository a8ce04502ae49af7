package searcher

import "dastan/experiments/metrics"

type Option func(m *Minimax)

// WithGoroutines evaluates the root moves concurrently on up to n goroutines.
func WithGoroutines(n int) Option {
	return func(m *Minimax) {
		if n > 0 {
			m.goroutines = n
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}
