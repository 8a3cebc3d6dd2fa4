package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// HealthChecker reports whether the ledger's storage is reachable.
type HealthChecker interface {
	HealthCheck() error
}

type HealthResponse struct {
	Status string `json:"status"`
}

// NewOpsRouter serves the operational endpoints next to the bot.
func NewOpsRouter(h *Handlers, db HealthChecker) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", h.HealthHandler(db)).Methods(http.MethodGet)
	router.HandleFunc("/stats", h.StatsHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}

func (h *Handlers) HealthHandler(db HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			h.Log.Warn("health check failed", zap.Error(err))
			writeError(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}

		writeSuccess(w, HealthResponse{Status: "ok"}, http.StatusOK)
	}
}

func (h *Handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.Counts(r.Context())
	if err != nil {
		h.Log.Error("stats failed", zap.Error(err))
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeSuccess(w, stats, http.StatusOK)
}
