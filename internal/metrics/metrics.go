package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	DerivedStatus  *prometheus.CounterVec
	Invoices       *prometheus.CounterVec
	UpstreamFetch  *prometheus.CounterVec
	SnapshotSource *prometheus.CounterVec
}

// New registers the gateway collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DerivedStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barbersmart_admin",
			Name:      "derived_status_total",
			Help:      "Appointment display statuses derived, by status and parse failure reason.",
		}, []string{"status", "reason"}),
		Invoices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barbersmart_admin",
			Name:      "invoices_reconciled_total",
			Help:      "Invoices reconciled, by line item source.",
		}, []string{"source"}),
		UpstreamFetch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barbersmart_admin",
			Name:      "upstream_fetch_total",
			Help:      "Upstream API fetches, by resource and outcome.",
		}, []string{"resource", "outcome"}),
		SnapshotSource: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barbersmart_admin",
			Name:      "snapshot_reads_total",
			Help:      "Snapshot reads, by resource and whether they were served from cache.",
		}, []string{"resource", "source"}),
	}

	reg.MustRegister(m.DerivedStatus, m.Invoices, m.UpstreamFetch, m.SnapshotSource)
	return m
}

// NewNop returns collectors that are not registered anywhere; handy in tests.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
