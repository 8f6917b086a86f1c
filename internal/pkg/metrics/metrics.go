// Package metrics exposes admission outcomes as Prometheus series.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lab_reservation"

const (
	OperationCreate = "create"
	OperationUpdate = "update"

	OutcomeAdmitted = "admitted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

type AdmissionRecorder interface {
	ObserveAdmission(operation, outcome string, elapsed time.Duration)
}

type Registry struct {
	reg        *prometheus.Registry
	admissions *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	admissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admissions_total",
		Help:      "Reservation admission attempts by operation and outcome.",
	}, []string{"operation", "outcome"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "admission_duration_seconds",
		Help:      "Time spent deciding and committing an admission attempt.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	reg.MustRegister(admissions, duration)

	return &Registry{
		reg:        reg,
		admissions: admissions,
		duration:   duration,
	}
}

func (r *Registry) ObserveAdmission(operation, outcome string, elapsed time.Duration) {
	r.admissions.WithLabelValues(operation, outcome).Inc()
	r.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

func (r *Registry) Admissions() *prometheus.CounterVec {
	return r.admissions
}

type NopRecorder struct{}

func (NopRecorder) ObserveAdmission(string, string, time.Duration) {}
