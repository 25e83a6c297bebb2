package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the records module and the rule
// engine calls it makes.
type Metrics struct {
	ClassificationChecks *prometheus.CounterVec
	NumberChecks         *prometheus.CounterVec
	NumbersGenerated     *prometheus.CounterVec
	NumberCollisions     prometheus.Counter
	DestructionDates     *prometheus.CounterVec
	RecordsDestroyed     prometheus.Counter
	AccessDenied         *prometheus.CounterVec
	OperationLatency     *prometheus.HistogramVec
}

// New creates a new Metrics instance with all records module metrics registered.
func New() *Metrics {
	return &Metrics{
		ClassificationChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "retention_classification_checks_total",
			Help: "Classification path checks by outcome",
		}, []string{"outcome"}), // outcome: "valid" or the error code

		NumberChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "retention_number_checks_total",
			Help: "Record number pattern checks by pattern and outcome",
		}, []string{"pattern", "outcome"}),

		NumbersGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "retention_numbers_generated_total",
			Help: "Record numbers generated by pattern",
		}, []string{"pattern"}),

		NumberCollisions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "retention_number_generation_collisions_total",
			Help: "Generated numbers discarded because they were already taken",
		}),

		DestructionDates: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "retention_destruction_date_computations_total",
			Help: "Destruction date computations by outcome",
		}, []string{"outcome"}),

		RecordsDestroyed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "retention_records_destroyed_total",
			Help: "Records marked destroyed",
		}),

		AccessDenied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "retention_access_denied_total",
			Help: "Operations refused by the authorization gate",
		}, []string{"operation"}),

		OperationLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "retention_records_operation_duration_seconds",
			Help:    "Duration of records service operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncClassificationCheck(outcome string) {
	if m != nil {
		m.ClassificationChecks.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncNumberCheck(pattern, outcome string) {
	if m != nil {
		m.NumberChecks.WithLabelValues(pattern, outcome).Inc()
	}
}

func (m *Metrics) IncNumberGenerated(pattern string) {
	if m != nil {
		m.NumbersGenerated.WithLabelValues(pattern).Inc()
	}
}

func (m *Metrics) IncNumberCollision() {
	if m != nil {
		m.NumberCollisions.Inc()
	}
}

func (m *Metrics) IncDestructionDate(outcome string) {
	if m != nil {
		m.DestructionDates.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) AddRecordsDestroyed(n int) {
	if m != nil {
		m.RecordsDestroyed.Add(float64(n))
	}
}

func (m *Metrics) IncAccessDenied(operation string) {
	if m != nil {
		m.AccessDenied.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) ObserveOperation(operation string, d time.Duration) {
	if m != nil {
		m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
