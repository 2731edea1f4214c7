package courier_post

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
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
	var courierModifyDTO dto.PostCourierJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&courierModifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModifyEntity := entities.CourierModify{
		Name:     &courierModifyDTO.Name,
		Phone:    &courierModifyDTO.Phone,
		HomeCity: &courierModifyDTO.HomeCity,
	}
	// без транспорта - значение по умолчанию
	if courierModifyDTO.TransportType != nil && *courierModifyDTO.TransportType != "" {
		transportType := entities.CourierTransportType(*courierModifyDTO.TransportType)
		courierModifyEntity.TransportType = &transportType
	}

	id, err := h.service.CreateCourier(r.Context(), courierModifyEntity)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.CourierCreateResponse{ID: id})
}
