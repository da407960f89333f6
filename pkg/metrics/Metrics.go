package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const Namespace = "kre8"

func NewCounter(name string, help string, labels []string) *Counter {
	counter := &Counter{
		metric: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      name,
				Help:      help,
			},
			labels,
		),
	}
	counter.Register()
	return counter
}

func NewGauge(name string, help string, labels []string) *Gauge {
	gauge := &Gauge{
		metric: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      name,
				Help:      help,
			},
			labels,
		),
	}

	gauge.Register()
	return gauge
}

func NewHistogram(name string, help string, labels []string) *Histogram {
	histogram := &Histogram{
		metric: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      name,
				Help:      help,
				Buckets:   prometheus.DefBuckets,
			},
			labels,
		),
	}

	histogram.Register()
	return histogram
}
