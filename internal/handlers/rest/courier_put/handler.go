package courier_put

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/entities"
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
	var courierModifyDTO dto.PutCourierJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&courierModifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Опциональные параметры
	courierModifyEntity := entities.CourierModify{
		ID:       &courierModifyDTO.ID,
		Name:     courierModifyDTO.Name,
		Phone:    courierModifyDTO.Phone,
		HomeCity: courierModifyDTO.HomeCity,
	}
	if courierModifyDTO.TransportType != nil {
		transportType := entities.CourierTransportType(*courierModifyDTO.TransportType)
		courierModifyEntity.TransportType = &transportType
	}

	res, err := h.service.UpdateCourier(r.Context(), courierModifyEntity)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Courier(res))
}
