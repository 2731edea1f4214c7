package order_reject_post

import (
	"net/http"

	"dispatch/internal/entities"
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

// ServeHTTP скрывает заказ из ленты курьера. Повторный отказ не ошибка.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	courierID, ok := auth.CourierFromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, entities.ErrPermissionDenied)
		return
	}

	err := h.service.RejectOrder(r.Context(), mux.Vars(r)["id"], courierID)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
