package admin_assign_post

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/presenter"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/pkg/logger"
	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "admin_assign_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok || principal.Role != auth.RoleAdmin {
		respond.Error(w, h.log, entities.ErrPermissionDenied)
		return
	}

	var assignDTO dto.PostAdminOrderAssignJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := h.service.AssignCourier(r.Context(), entities.AssignCommand{
		OrderID:         mux.Vars(r)["id"],
		CourierID:       assignDTO.CourierID,
		ConfirmReassign: pointer.Get(assignDTO.ConfirmReassign),
		Operator:        principal.Subject,
	})
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("order_id", order.ID),
		logger.NewField("courier_id", assignDTO.CourierID),
		logger.NewField("operator", principal.Subject),
	).Info("courier assigned by operator")

	respond.JSON(w, h.log, http.StatusOK, presenter.Order(order))
}
