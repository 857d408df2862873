package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medigen_bookings_confirmed_total",
		Help: "Booking sessions that reached the confirmed state and were committed.",
	})

	AppointmentsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medigen_appointments_cancelled_total",
		Help: "Appointments removed by the patient.",
	})

	PersistenceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medigen_persistence_failures_total",
		Help: "Durable storage reads or writes that failed.",
	}, []string{"op"})

	AssistantFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medigen_assistant_fallbacks_total",
		Help: "Assistant replies replaced by the apology message.",
	})
)
