package handlers

import "github.com/prometheus/client_golang/prometheus"

type CreateMetrics struct {
	CreateRequests *prometheus.CounterVec
}

func (m *CreateMetrics) IncCreate(mode string) {
	if m == nil || m.CreateRequests == nil {
		return
	}

	m.CreateRequests.WithLabelValues(mode).Inc()
}
