package order_transition_post

import (
	"encoding/base64"
	"encoding/json"
	"errors"
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
	log          handlerLogger
	service      Service
	maxBodyBytes int64
}

// New: maxBodyBytes ограничивает тело вместе с фото в base64.
func New(log handlerLogger, service Service, maxBodyBytes int64) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_transition_post"))

	return &Handler{
		log:          handlerLog,
		service:      service,
		maxBodyBytes: maxBodyBytes,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	courierID, ok := auth.CourierFromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, entities.ErrPermissionDenied)
		return
	}

	var transitionDTO dto.PostOrderTransitionJSONRequestBody
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes)).Decode(&transitionDTO)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			respond.JSON(w, h.log, http.StatusBadRequest, dto.Error{Error: "photo content is not valid base64"})
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	status, err := entities.ParseOrderStatus(string(transitionDTO.Status))
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	cmd := entities.TransitionCommand{
		OrderID:   mux.Vars(r)["id"],
		CourierID: courierID,
		To:        status,
	}
	if transitionDTO.Photo != nil {
		cmd.Photo = &entities.ProofPhoto{
			Content:     transitionDTO.Photo.Content,
			ContentType: pointer.Get(transitionDTO.Photo.ContentType),
		}
	}

	order, err := h.service.Advance(r.Context(), cmd)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Order(order))
}
