package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Pinger проверка доступности базы для /healthz
type Pinger interface {
	Ping(ctx context.Context) error
}

// MetricsServer отдаёт /metrics и /healthz
type MetricsServer struct {
	srv    *http.Server
	logger *zap.Logger
}

func NewMetricsServer(addr string, gatherer prometheus.Gatherer, db Pinger, logger *zap.Logger) *MetricsServer {
	return &MetricsServer{
		srv: &http.Server{
			Addr:         addr,
			Handler:      NewMetricsRouter(gatherer, db),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func NewMetricsRouter(gatherer prometheus.Gatherer, db Pinger) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	return r
}

// Start запускает сервер в отдельной горутине
func (s *MetricsServer) Start() {
	go func() {
		s.logger.Info("Metrics server started", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Metrics server failed", zap.Error(err))
		}
	}()
}

func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
