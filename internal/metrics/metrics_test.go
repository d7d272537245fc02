package metrics

import (
	"testing"

	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.AvailabilityCheck("trainer", "available")
	m.AvailabilityCheck("trainer", "conflict")
	m.AvailabilityCheck("trainer", "conflict")
	m.Booking(model.CommitmentSession)
	m.BillTransition(model.BillPaid)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.availabilityChecks.WithLabelValues("trainer", "available")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.availabilityChecks.WithLabelValues("trainer", "conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues("personal training session")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.billTransitions.WithLabelValues("Paid")))
}

func TestNewPanicsOnDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
