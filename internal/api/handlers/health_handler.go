package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/portfolio-studio/showcase/internal/api/types"
	appErr "github.com/portfolio-studio/showcase/pkg/errors"
)

// Pinger reports whether the backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler { return &HealthHandler{db: db} }

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.StatusResponse{Status: "ok"})
}

func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			writeError(w, r, appErr.Wrap(err, appErr.CodeUnavailable, "database unavailable"))
			return
		}
	}
	writeJSON(w, http.StatusOK, types.StatusResponse{Status: "ready"})
}
