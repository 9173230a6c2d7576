// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"strconv"
	"time"

	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/walletmint/walletmint/consts"
	"github.com/walletmint/walletmint/requester"
)

var _ requester.Observer = (*Metrics)(nil)

type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	runs            *prometheus.CounterVec
}

func New() (*Metrics, error) {
	r := prometheus.NewRegistry()
	m := &Metrics{
		registry: r,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: consts.Namespace,
			Name:      "requests_total",
			Help:      "number of api requests by endpoint and response code (0 when no response)",
		}, []string{"endpoint", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: consts.Namespace,
			Name:      "request_duration_seconds",
			Help:      "time spent waiting on api requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: consts.Namespace,
			Name:      "runs_total",
			Help:      "number of runs by terminal state",
		}, []string{"state"}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.requests),
		r.Register(m.requestDuration),
		r.Register(m.runs),
	)
	return m, errs.Err
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Observe(name string, code int, elapsed time.Duration) {
	m.requests.WithLabelValues(name, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordRun(state string) {
	m.runs.WithLabelValues(state).Inc()
}

// WriteFile dumps the registry in the text exposition format, suitable for
// the node exporter textfile collector.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
