package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Conversion outcomes recorded by the conversions counter.
const (
	outcomeSuccess     = "success"
	outcomeInvalid     = "invalid_source"
	outcomeMalformed   = "malformed_body"
	outcomeTooLarge    = "too_large"
	outcomeInternal    = "internal_error"
	outcomeRateLimited = "rate_limited"
)

// metrics groups the server's Prometheus collectors.
type metrics struct {
	conversions *prometheus.CounterVec
	requests    *prometheus.CounterVec
	uploadBytes prometheus.Histogram
	operations  prometheus.Histogram
	pending     prometheus.GaugeFunc
}

func newMetrics(reg prometheus.Registerer, pending func() float64) (*metrics, error) {
	m := &metrics{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oasify",
			Name:      "conversions_total",
			Help:      "Upload conversions by outcome.",
		}, []string{"outcome"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oasify",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		uploadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "oasify",
			Name:      "upload_bytes",
			Help:      "Size of uploaded export files.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		}),
		operations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "oasify",
			Name:      "converted_operations",
			Help:      "Operations per converted document.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		pending: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "oasify",
			Name:      "pending_results",
			Help:      "Converted documents waiting for download.",
		}, pending),
	}

	for _, c := range []prometheus.Collector{m.conversions, m.requests, m.uploadBytes, m.operations, m.pending} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
