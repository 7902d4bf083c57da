// Package metrics concentra os contadores Prometheus expostos em /metrics
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "centralia"

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	// LeadOperations conta as operações do pipeline por resultado
	LeadOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lead_operations_total",
		Help:      "Operações sobre leads executadas pelo pipeline.",
	}, []string{"operation", "result"})

	NotificationsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_emitted_total",
		Help:      "Notificações geradas pelas regras de alerta.",
	}, []string{"rule", "priority"})

	AlertDigestRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alert_digest_runs_total",
		Help:      "Resumos diários de alertas gravados por conta.",
	}, []string{"result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP por rota.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status_code"})
)

// ObserveLeadOperation registra o resultado de uma operação de lead
func ObserveLeadOperation(operation string, ok bool) {
	result := ResultSuccess
	if !ok {
		result = ResultError
	}
	LeadOperations.WithLabelValues(operation, result).Inc()
}
