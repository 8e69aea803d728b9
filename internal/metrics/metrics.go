package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics - метрики автомата на собственном реестре
type Metrics struct {
	registry *prometheus.Registry

	spins    prometheus.Counter
	wagered  prometheus.Counter
	paid     prometheus.Counter
	lineWins *prometheus.CounterVec
	sessions prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		spins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "slot_spins_total",
			Help: "Total number of settled spins",
		}),
		wagered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "slot_wagered_total",
			Help: "Total amount wagered",
		}),
		paid: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "slot_paid_total",
			Help: "Total amount paid out",
		}),
		lineWins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "slot_line_wins_total",
			Help: "Winning lines by line number",
		}, []string{"line"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "slot_sessions_active",
			Help: "Sessions opened by deposit and not cashed out",
		}),
	}

	m.registry.MustRegister(
		m.spins,
		m.wagered,
		m.paid,
		m.lineWins,
		m.sessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveSpin учитывает settled спин
func (m *Metrics) ObserveSpin(totalBet, winnings int, winningLines []int) {
	m.spins.Inc()
	m.wagered.Add(float64(totalBet))
	m.paid.Add(float64(winnings))
	for _, line := range winningLines {
		m.lineWins.WithLabelValues(strconv.Itoa(line)).Inc()
	}
}

func (m *Metrics) SessionOpened() {
	m.sessions.Inc()
}

func (m *Metrics) SessionClosed() {
	m.sessions.Dec()
}

// SessionsExpired - сессии, удалённые хранилищем по истечении срока
func (m *Metrics) SessionsExpired(n int) {
	m.sessions.Sub(float64(n))
}

// Handler - http.Handler для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
