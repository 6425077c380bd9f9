package pitch

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	notesTransposed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jianpu_notes_transposed_total",
			Help: "Count of notes moved between keys",
		},
	)
)

func init() {
	prometheus.MustRegister(notesTransposed)
}
