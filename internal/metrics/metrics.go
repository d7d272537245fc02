package metrics

import (
	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fitness_club"

// Metrics счётчики проверок доступности, бронирований и переходов счетов
type Metrics struct {
	availabilityChecks *prometheus.CounterVec
	bookings           *prometheus.CounterVec
	billTransitions    *prometheus.CounterVec
}

// New создаёт счётчики и регистрирует их в reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		availabilityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_checks_total",
			Help:      "Availability checks by entity and result.",
		}, []string{"entity", "result"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Created classes, class registrations, sessions and room bookings.",
		}, []string{"kind"}),
		billTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bill_transitions_total",
			Help:      "Bill status transitions by target status.",
		}, []string{"to"}),
	}

	reg.MustRegister(m.availabilityChecks, m.bookings, m.billTransitions)
	return m
}

func (m *Metrics) AvailabilityCheck(entity, result string) {
	m.availabilityChecks.WithLabelValues(entity, result).Inc()
}

func (m *Metrics) Booking(kind model.CommitmentKind) {
	m.bookings.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) BillTransition(to model.BillStatus) {
	m.billTransitions.WithLabelValues(string(to)).Inc()
}
