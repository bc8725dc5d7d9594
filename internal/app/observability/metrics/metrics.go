package metrics

import (
	"context"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	PageRendersTotal       metric.Int64Counter
	BackendRequestDuration metric.Float64Histogram
	BackendErrorsTotal     metric.Int64Counter
	AuthRequestsTotal      metric.Int64Counter
	GuardDecisionsTotal    metric.Int64Counter
	ToastsPublishedTotal   metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments ONLY ONCE,
// using the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("book-exchange-web")
		var err error
		m := &AppMetrics{}

		m.PageRendersTotal, err = meter.Int64Counter(
			"page_renders_total",
			metric.WithDescription("Total number of pages rendered"),
			metric.WithUnit("{render}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create page_renders_total: %v", err)
		}

		m.BackendRequestDuration, err = meter.Float64Histogram(
			"backend_request_duration_seconds",
			metric.WithDescription("Duration of backend API calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create backend_request_duration_seconds: %v", err)
		}

		m.BackendErrorsTotal, err = meter.Int64Counter(
			"backend_request_errors_total",
			metric.WithDescription("Total number of failed backend API calls"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create backend_request_errors_total: %v", err)
		}

		m.AuthRequestsTotal, err = meter.Int64Counter(
			"auth_requests_total",
			metric.WithDescription("Total number of authentication operations"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create auth_requests_total: %v", err)
		}

		m.GuardDecisionsTotal, err = meter.Int64Counter(
			"route_guard_decisions_total",
			metric.WithDescription("Total number of route guard evaluations by outcome"),
			metric.WithUnit("{decision}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create route_guard_decisions_total: %v", err)
		}

		m.ToastsPublishedTotal, err = meter.Int64Counter(
			"toasts_published_total",
			metric.WithDescription("Total number of notifications published"),
			metric.WithUnit("{toast}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create toasts_published_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the global metrics instance, or nil before InitAppMetrics.
func Get() *AppMetrics {
	return appMetrics
}

// ObserveBackendRequest records one backend round trip. Nil-safe so the
// client works in tests without observability wiring.
func ObserveBackendRequest(ctx context.Context, method, path string, d time.Duration, err error) {
	m := appMetrics
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
	)
	m.BackendRequestDuration.Record(ctx, d.Seconds(), attrs)
	if err != nil {
		m.BackendErrorsTotal.Add(ctx, 1, attrs)
	}
}

// RecordGuardDecision counts one route guard evaluation outcome
// (pass, redirect_signin, redirect_landing, skipped).
func RecordGuardDecision(ctx context.Context, outcome string) {
	m := appMetrics
	if m == nil {
		return
	}
	m.GuardDecisionsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordAuthRequest counts one auth operation (login, register, logout,
// oauth_callback, refresh).
func RecordAuthRequest(ctx context.Context, op string, success bool) {
	m := appMetrics
	if m == nil {
		return
	}
	m.AuthRequestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.Bool("success", success),
	))
}

// RecordToast counts one published notification by kind.
func RecordToast(ctx context.Context, kind string) {
	m := appMetrics
	if m == nil {
		return
	}
	m.ToastsPublishedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordPageRender counts one full or fragment page render.
func RecordPageRender(ctx context.Context, page string) {
	m := appMetrics
	if m == nil {
		return
	}
	m.PageRendersTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("page", page)))
}
