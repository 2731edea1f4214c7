package order_route_get

import (
	"context"
	"net/http"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/presenter"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/pkg/logger"
	"github.com/gorilla/mux"
)

// Handler - подсказка маршрута. Ошибка карт не влияет на заказ.
type Handler struct {
	log     handlerLogger
	service Service
	timeout time.Duration
}

func New(log handlerLogger, service Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_route_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
		timeout: timeout,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	courierID, ok := auth.CourierFromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, entities.ErrPermissionDenied)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	route, err := h.service.RouteForCourier(ctx, mux.Vars(r)["id"], courierID)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	respond.JSON(w, h.log, http.StatusOK, presenter.Route(route))
}
