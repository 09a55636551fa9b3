package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func findFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	mf := findFamily(t, reg, name)
	if mf == nil {
		t.Fatalf("metric family %q not registered", name)
	}
	for _, m := range mf.GetMetric() {
		match := true
		for _, lp := range m.GetLabel() {
			if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
				match = false
				break
			}
		}
		if match {
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestMetricsMiddleware(t *testing.T) {
	t.Run("records request count and duration", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		mw := Metrics(WithRegistry(reg))

		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/gallery", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		got := counterValue(t, reg, "acss_http_requests_total", map[string]string{
			"path": "/gallery",
			"code": "200",
		})
		if got != 1 {
			t.Fatalf("http_requests_total=%v, want 1", got)
		}

		dur := findFamily(t, reg, "acss_http_request_duration_seconds")
		if dur == nil {
			t.Fatal("expected duration histogram to be registered")
		}
		if dur.GetMetric()[0].GetHistogram().GetSampleCount() != 1 {
			t.Fatal("expected one duration sample")
		}
	})

	t.Run("captures non-200 status codes", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		mw := Metrics(WithRegistry(reg))

		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusNotFound)
		}))

		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		got := counterValue(t, reg, "acss_http_requests_total", map[string]string{
			"path": "/missing",
			"code": "404",
		})
		if got != 1 {
			t.Fatalf("http_requests_total(404)=%v, want 1", got)
		}
	})

	t.Run("custom namespace", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		mw := Metrics(WithRegistry(reg), WithNamespace("preview"))

		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		if findFamily(t, reg, "preview_http_requests_total") == nil {
			t.Fatal("expected namespaced metric family")
		}
	})
}

func TestRenderMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rm := NewRenderMetrics(WithRegistry(reg))

	rm.ObserveRender("button")
	rm.ObserveRender("button")
	rm.ObserveRender("a")
	rm.ObserveError("E001")

	if got := counterValue(t, reg, "acss_renders_total", map[string]string{"variant": "button"}); got != 2 {
		t.Fatalf("renders_total(button)=%v, want 2", got)
	}
	if got := counterValue(t, reg, "acss_renders_total", map[string]string{"variant": "a"}); got != 1 {
		t.Fatalf("renders_total(a)=%v, want 1", got)
	}
	if got := counterValue(t, reg, "acss_render_errors_total", map[string]string{"code": "E001"}); got != 1 {
		t.Fatalf("render_errors_total(E001)=%v, want 1", got)
	}
}

func TestOpenTelemetryMiddleware(t *testing.T) {
	t.Run("passes request through", func(t *testing.T) {
		mw := OpenTelemetry()
		called := false
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gallery", nil))

		if !called {
			t.Fatal("expected handler to be invoked")
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status=%d, want 200", rec.Code)
		}
	})

	t.Run("filter skips tracing but still serves", func(t *testing.T) {
		mw := OpenTelemetry(WithRequestFilter(func(r *http.Request) bool {
			return r.URL.Path != "/healthz"
		}))
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status=%d, want 204", rec.Code)
		}
	})
}
