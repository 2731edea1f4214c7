package order_claim_post

import (
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/presenter"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/pkg/middlewares/auth"
	"github.com/gorilla/mux"
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
	courierID, ok := auth.CourierFromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, entities.ErrPermissionDenied)
		return
	}

	order, err := h.service.ClaimOrder(r.Context(), mux.Vars(r)["id"], courierID)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Order(order))
}
