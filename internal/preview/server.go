package preview

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shawn-sandy/acss/internal/config"
	acsserr "github.com/shawn-sandy/acss/internal/errors"
	"github.com/shawn-sandy/acss/pkg/middleware"
	"github.com/shawn-sandy/acss/pkg/ui"
)

// ServerOptions configures the preview server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger is the structured logger. Defaults to slog text on stderr.
	Logger *slog.Logger

	// LiveReload enables the WebSocket reload hub and watcher.
	LiveReload bool

	// OnReload is called when browsers are reloaded.
	OnReload func(clients int)
}

// Server serves the component gallery with live reload, metrics, and
// tracing.
type Server struct {
	cfg        *config.Config
	log        *slog.Logger
	options    ServerOptions
	gallery    *Gallery
	reload     *ReloadHub
	watcher    *Watcher
	registry   *prometheus.Registry
	httpServer *http.Server
	mu         sync.Mutex
	running    bool
}

// NewServer creates a preview server for the given configuration.
func NewServer(options ServerOptions) (*Server, error) {
	cfg := options.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	registry := prometheus.NewRegistry()
	renderMetrics := middleware.NewRenderMetrics(middleware.WithRegistry(registry))

	gallery := NewGallery(cfg,
		WithRenderMetrics(renderMetrics),
		WithLiveReload(options.LiveReload),
	)

	s := &Server{
		cfg:      cfg,
		log:      logger,
		options:  options,
		gallery:  gallery,
		registry: registry,
	}

	if options.LiveReload {
		s.reload = NewReloadHub()
		s.watcher = NewWatcher(WatcherConfig{
			Paths: s.watchPaths(),
		})
	}

	return s, nil
}

// watchPaths resolves the theme stylesheets to absolute paths.
func (s *Server) watchPaths() []string {
	paths := make([]string, 0, len(s.cfg.Theme.Stylesheets))
	for _, sheet := range s.cfg.Theme.Stylesheets {
		if filepath.IsAbs(sheet) {
			paths = append(paths, sheet)
			continue
		}
		paths = append(paths, filepath.Join(s.cfg.Dir(), sheet))
	}
	return paths
}

// Start runs the server until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	if s.watcher != nil {
		s.watcher.OnChange(func(change Change) {
			switch change.Type {
			case ChangeCSS:
				s.log.Info("stylesheet changed", "path", change.Path)
				s.reload.NotifyCSS(change.Path)
			default:
				s.log.Info("asset changed", "path", change.Path)
				s.reload.NotifyReload()
				if s.options.OnReload != nil {
					s.options.OnReload(s.reload.ClientCount())
				}
			}
		})
		go s.watcher.Start(ctx)
	}

	s.httpServer = &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.Handler(),
	}

	s.log.Info("preview server running",
		"addr", s.cfg.Addr(),
		"live_reload", s.reload != nil,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- acsserr.New("E300").Wrap(err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop shuts the server down.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.reload != nil {
		s.reload.Close()
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// Handler builds the chi router for the gallery.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	// The WebSocket upgrade needs the raw ResponseWriter, so the reload
	// endpoint stays outside the instrumented group.
	if s.reload != nil {
		r.Get("/_acss/reload", s.reload.HandleWebSocket)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Metrics(
			middleware.WithNamespace("acss"),
			middleware.WithSubsystem("preview"),
			middleware.WithRegistry(s.registry),
		))
		r.Use(middleware.OpenTelemetry(
			middleware.WithTracerName("acss-preview"),
			middleware.WithRequestFilter(func(req *http.Request) bool {
				return req.URL.Path != "/healthz" && req.URL.Path != "/metrics"
			}),
		))

		r.Get("/", s.handleIndex)
		r.Get("/variant/{name}", s.handleVariant)
		r.Get("/healthz", s.handleHealth)
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
		r.Get("/theme/*", s.handleTheme)
	})

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html, err := s.gallery.IndexPage()
	if err != nil {
		s.log.Error("gallery render failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func (s *Server) handleVariant(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	html, err := s.gallery.VariantPage(name)
	if err != nil {
		if ui.IsUnknownVariant(err) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.log.Error("variant render failed", "variant", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleTheme serves the configured stylesheets from the project
// directory.
func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	rel := chi.URLParam(r, "*")
	if !s.isThemeFile(rel) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(s.cfg.Dir(), filepath.FromSlash(rel)))
}

// isThemeFile restricts /theme/ to the stylesheets named in the
// configuration.
func (s *Server) isThemeFile(rel string) bool {
	clean := filepath.ToSlash(filepath.Clean(rel))
	for _, sheet := range s.cfg.Theme.Stylesheets {
		if filepath.ToSlash(filepath.Clean(sheet)) == clean {
			return true
		}
	}
	return false
}
