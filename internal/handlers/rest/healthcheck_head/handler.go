package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

// Handler - readiness: инстанс готов, пока не останавливается и видит хранилище.
type Handler struct {
	isShuttingDown *atomic.Bool
	store          Pinger
	timeout        time.Duration
}

func New(isShuttingDown *atomic.Bool, store Pinger, timeout time.Duration) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		store:          store,
		timeout:        timeout,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
