package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emailgw_dispatch_total",
			Help: "Dispatch attempts by organization and outcome",
		},
		[]string{"organization", "outcome"}, // accepted|rejected|transport_error
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		DispatchTotal,
	)
}
