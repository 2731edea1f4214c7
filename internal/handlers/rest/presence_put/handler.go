package presence_put

import (
	"encoding/json"
	"net/http"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/presenter"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	now     func() time.Time
}

func New(log handlerLogger, service Service, now func() time.Time) *Handler {
	handlerLog := log.With(logger.NewField("handler", "presence_put"))

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

	var presenceDTO dto.PresenceUpdate
	err := json.NewDecoder(r.Body).Decode(&presenceDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !presenceDTO.Online {
		err = h.service.GoOffline(r.Context(), courierID)
		if err != nil {
			respond.Error(w, h.log, err)
			return
		}
		respond.JSON(w, h.log, http.StatusOK, dto.Session{CourierID: courierID})
		return
	}

	var position *entities.DriverLocation
	if presenceDTO.Position != nil {
		location := toDriverLocation(presenceDTO.Position, h.now)
		position = &location
	}

	session, err := h.service.GoOnline(r.Context(), courierID, position)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Session(session))
}

// toDriverLocation: без recorded_at сэмпл датируется временем приема.
func toDriverLocation(p *dto.Position, now func() time.Time) entities.DriverLocation {
	recordedAt := now().UTC()
	if p.RecordedAt != nil {
		recordedAt = p.RecordedAt.UTC()
	}
	return entities.DriverLocation{
		Coordinates: entities.Coordinates{Latitude: p.Latitude, Longitude: p.Longitude},
		RecordedAt:  recordedAt,
	}
}
