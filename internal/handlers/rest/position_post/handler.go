package position_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/presence"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	now     func() time.Time
}

func New(log handlerLogger, service Service, now func() time.Time) *Handler {
	handlerLog := log.With(logger.NewField("handler", "position_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
		now:     now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	courierID, ok := auth.CourierFromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, entities.ErrPermissionDenied)
		return
	}

	var positionDTO dto.Position
	err := json.NewDecoder(r.Body).Decode(&positionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	recordedAt := h.now().UTC()
	if positionDTO.RecordedAt != nil {
		recordedAt = positionDTO.RecordedAt.UTC()
	}

	err = h.service.ReportPosition(r.Context(), courierID, entities.DriverLocation{
		Coordinates: entities.Coordinates{Latitude: positionDTO.Latitude, Longitude: positionDTO.Longitude},
		RecordedAt:  recordedAt,
	})
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, presence.ErrStalePosition):
		// устройство досылает сэмплы из буфера, старые просто отбрасываем
		h.log.With(logger.NewField("courier_id", courierID)).Info("stale position dropped")
		w.WriteHeader(http.StatusAccepted)
	default:
		respond.Error(w, h.log, err)
	}
}
