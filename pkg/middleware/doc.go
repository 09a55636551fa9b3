// Package middleware provides HTTP middleware for the preview server:
// Prometheus metrics and OpenTelemetry tracing.
//
// Both middlewares follow the functional options pattern:
//
//	r.Use(middleware.Metrics(middleware.WithNamespace("preview")))
//	r.Use(middleware.OpenTelemetry(middleware.WithTracerName("acss-preview")))
package middleware
