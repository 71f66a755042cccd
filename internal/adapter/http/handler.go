package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaign-engine/internal/core/port"
	"campaign-engine/internal/metrics"
)

// Services are the use cases exposed over HTTP.
type Services struct {
	Clock      port.ClockUseCase
	Schedules  port.ScheduleUseCase
	Executor   port.ExecutorUseCase
	Rebalancer port.RebalancerUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// exposing the admin API under /api/v1 and prometheus metrics under /metrics.
type Handler struct {
	svc     Services
	logger  *slog.Logger
	metrics *metrics.Metrics
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. gatherer may be nil
// when metrics should not be served.
func NewHandler(svc Services, gatherer prometheus.Gatherer, logger *slog.Logger, m *metrics.Metrics) *Handler {
	h := &Handler{
		svc:     svc,
		logger:  logger.With(slog.String("component", "http")),
		metrics: m,
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.instrument)

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/clock", func(r chi.Router) {
			r.Get("/", h.handleClockState)
			r.Post("/start", h.handleClockStart)
			r.Post("/pause", h.handleClockPause)
			r.Put("/speed", h.handleClockSpeed)
		})
		r.Route("/schedules", func(r chi.Router) {
			r.Post("/", h.handleCreateSchedule)
			r.Get("/due", h.handleListDue)
			r.Get("/upcoming", h.handleUpcoming)
			r.Get("/calendar", h.handleCalendar)
			r.Delete("/{id}", h.handleCancelSchedule)
		})
		r.Post("/campaigns/{id}/activate", h.handleActivate)
		r.Post("/campaigns/{id}/pause", h.handlePause)
		r.Post("/executions/run", h.handleRunNow)
		r.Post("/rebalance", h.handleRebalance)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// instrument records request count and latency per route pattern.
func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.RecordHTTPRequest(r.Method, route, strconv.Itoa(status), time.Since(start))
	})
}
