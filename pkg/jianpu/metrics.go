package jianpu

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sheetsTransposed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jianpu_sheets_transposed_total",
			Help: "Count of sheets transposed",
		},
	)

	unrecognizedChars = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jianpu_unrecognized_chars_total",
			Help: "Characters reported as unrecognized when warnings are requested",
		},
	)
)

func init() {
	prometheus.MustRegister(sheetsTransposed, unrecognizedChars)
}
