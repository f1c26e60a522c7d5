package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"orderdesk/internal/catalog"
	"orderdesk/internal/metrics"
	"orderdesk/internal/notify"
	"orderdesk/internal/order"
)

func NewRouter(
	orders *order.Module,
	teams *catalog.Controller,
	notifications *notify.Controller,
	m *metrics.Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		teams.Routes(r)

		r.Get("/notifications", notifications.HandleRecent)

		r.Get("/orders", orders.Orders.ListOrders)
		r.Get("/orders/stats", orders.Orders.Stats)
		r.Get("/orders/export", orders.Orders.Export)

		r.Post("/sessions", orders.Sessions.CreateSession)
		r.Route("/sessions/{sessionId}", func(r chi.Router) {
			r.Get("/", orders.Sessions.GetSession)
			r.Post("/team", orders.Sessions.SelectTeam)
			r.Post("/assign", orders.Sessions.AssignMember)
			r.Delete("/selection", orders.Sessions.CancelSelection)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				zap.String("requestId", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
