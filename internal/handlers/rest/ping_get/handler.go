package ping_get

import (
	"net/http"
	"time"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/respond"
)

type Handler struct {
	log       handlerLogger
	startedAt time.Time
	now       func() time.Time
}

func New(log handlerLogger, startedAt time.Time, now func() time.Time) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		startedAt: startedAt,
		now:       now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := "pong"
	res := dto.PingResponse{
		Message:       &message,
		UptimeSeconds: int64(h.now().Sub(h.startedAt).Seconds()),
	}

	respond.JSON(w, h.log, http.StatusOK, res)
}
