package feed_stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/presenter"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/pkg/logger"
)

const eventName = "feed"

// Handler отдает ленту курьера как server-sent events: событие feed
// с полным снимком на каждое изменение и комментарий-heartbeat между ними.
type Handler struct {
	log       handlerLogger
	service   Service
	heartbeat time.Duration
}

func New(log handlerLogger, service Service, heartbeat time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "feed_stream"))

	return &Handler{
		log:       handlerLog,
		service:   service,
		heartbeat: heartbeat,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	courierID, ok := auth.CourierFromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, entities.ErrPermissionDenied)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.log.Error("response writer does not support flushing")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	updates, err := h.service.WatchFeed(ctx, courierID)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	// поток живет дольше WriteTimeout сервера
	err = http.NewResponseController(w).SetWriteDeadline(time.Time{})
	if err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.log.With(logger.NewField("error", err)).Warn("reset write deadline")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	OpenStreams.Inc()
	defer OpenStreams.Dec()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	log := h.log.With(logger.NewField("courier_id", courierID))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err = fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return
			}
		case items, ok := <-updates:
			if !ok {
				return
			}
			if err = writeEvent(w, items); err != nil {
				log.With(logger.NewField("error", err)).Warn("write feed event")
				return
			}
			EventsSentTotal.Inc()
		}
		flusher.Flush()
	}
}

func writeEvent(w http.ResponseWriter, items []entities.FeedItem) error {
	data, err := json.Marshal(presenter.Feed(items))
	if err != nil {
		return fmt.Errorf("marshal feed: %w", err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventName, data)
	return err
}
