package preview

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shawn-sandy/acss/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(ServerOptions{Config: testConfig()})
	if err != nil {
		t.Fatalf("NewServer() error: %v", err)
	}
	return s
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServerRoutes(t *testing.T) {
	s := newTestServer(t)
	handler := s.Handler()

	t.Run("index", func(t *testing.T) {
		rec := get(t, handler, "/")
		if rec.Code != http.StatusOK {
			t.Fatalf("status=%d, want 200", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("Content-Type=%q, want text/html", ct)
		}
		body, _ := io.ReadAll(rec.Body)
		if !strings.Contains(string(body), "test-kit gallery") {
			t.Error("expected gallery page body")
		}
	})

	t.Run("variant page", func(t *testing.T) {
		rec := get(t, handler, "/variant/a")
		if rec.Code != http.StatusOK {
			t.Fatalf("status=%d, want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `id="variant-a"`) {
			t.Error("expected anchor variant section")
		}
	})

	t.Run("unknown variant is 404", func(t *testing.T) {
		rec := get(t, handler, "/variant/blink")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status=%d, want 404", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "E001") {
			t.Error("expected unknown variant error code in body")
		}
	})

	t.Run("healthz", func(t *testing.T) {
		rec := get(t, handler, "/healthz")
		if rec.Code != http.StatusOK {
			t.Fatalf("status=%d, want 200", rec.Code)
		}
	})

	t.Run("metrics endpoint reports renders", func(t *testing.T) {
		get(t, handler, "/")
		rec := get(t, handler, "/metrics")
		if rec.Code != http.StatusOK {
			t.Fatalf("status=%d, want 200", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "acss_renders_total") {
			t.Error("expected render counter in metrics output")
		}
		if !strings.Contains(body, "acss_preview_http_requests_total") {
			t.Error("expected request counter in metrics output")
		}
	})

	t.Run("unlisted theme file is 404", func(t *testing.T) {
		rec := get(t, handler, "/theme/secret.css")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status=%d, want 404", rec.Code)
		}
	})
}

func TestServerServesThemeFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "theme"), 0o755); err != nil {
		t.Fatal(err)
	}
	css := "body { margin: 0; }"
	if err := os.WriteFile(filepath.Join(dir, "theme", "base.css"), []byte(css), 0o644); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(dir, "acss.json")
	if err := os.WriteFile(cfgPath, []byte(`{"name":"test-kit","theme":{"stylesheets":["theme/base.css"]}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	s, err := NewServer(ServerOptions{Config: loaded})
	if err != nil {
		t.Fatalf("NewServer() error: %v", err)
	}

	rec := get(t, s.Handler(), "/theme/theme/base.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", rec.Code)
	}
	if rec.Body.String() != css {
		t.Errorf("body=%q, want %q", rec.Body.String(), css)
	}
}

func TestServerStartStop(t *testing.T) {
	s := newTestServer(t)

	ln, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatal(err)
	}
	s.cfg.Preview.Port = ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
