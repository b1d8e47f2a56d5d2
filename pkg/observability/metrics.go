package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/sift"
)

// Metrics holds the validation instruments. Build one per process (or per
// registry) and attach its hooks to the schemas worth observing.
type Metrics struct {
	parses   *prometheus.CounterVec
	issues   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New builds the instruments and registers them on reg. Registration
// conflicts panic, like prometheus.MustRegister.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		parses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sift_parse_total",
				Help: "Total number of schema validations by outcome.",
			},
			[]string{"kind", "outcome"},
		),
		issues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sift_issues_total",
				Help: "Total number of validation issues reported.",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "sift_parse_duration_seconds",
				Help: "Duration of schema validations.",
				// Validations settle in microseconds, far below the
				// default request-latency buckets.
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 8),
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(m.parses, m.issues, m.duration)
	return m
}

// Hooks returns lifecycle hooks that record every observed validation.
func (m *Metrics) Hooks() sift.Hooks {
	return sift.Hooks{
		OnParseEnd: func(e *sift.ParseEvent) {
			kind := string(e.Kind)
			outcome := "ok"
			if e.Issues > 0 {
				outcome = "invalid"
				m.issues.WithLabelValues(kind).Add(float64(e.Issues))
			}
			m.parses.WithLabelValues(kind, outcome).Inc()
			m.duration.WithLabelValues(kind).Observe(e.Duration.Seconds())
		},
	}
}

// Instrument attaches m's hooks to s. The result validates exactly like s.
func (m *Metrics) Instrument(s sift.Schema) sift.Schema {
	return sift.Instrument(s, m.Hooks())
}
