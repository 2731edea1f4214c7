package couriers_get

import (
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/presenter"
	"dispatch/internal/handlers/rest/respond"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	courierEntities, err := h.service.GetCouriers(r.Context())
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	courierDTOs := make([]dto.Courier, len(courierEntities))
	for i := range courierEntities {
		courierDTOs[i] = presenter.Courier(&courierEntities[i])
	}

	respond.JSON(w, h.log, http.StatusOK, courierDTOs)
}
