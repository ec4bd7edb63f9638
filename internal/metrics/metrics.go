// Package metrics holds the domain prometheus collectors. HTTP request metrics
// live with the fiber middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ContentReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "bwdtc", Name: "content_reads_total", Help: "Content document reads by document and source (stored, default, fallback)."},
		[]string{"document", "source"},
	)
	ContentWriteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "bwdtc", Name: "content_write_failures_total", Help: "Content writes that failed and were dropped."},
		[]string{"document"},
	)
	MailDispatch = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "bwdtc", Name: "mail_dispatch_total", Help: "Mail dispatch attempts by message kind and result."},
		[]string{"kind", "result"},
	)
	FormRelay = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "bwdtc", Name: "form_relay_total", Help: "Form submissions relayed to the forms backend by form and result."},
		[]string{"form", "result"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "bwdtc", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "bwdtc", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ContentReads)
	reg.MustRegister(ContentWriteFailures)
	reg.MustRegister(MailDispatch)
	reg.MustRegister(FormRelay)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}

// Result maps an error to the result label.
func Result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
