// Package respond переводит ошибки сервисов в HTTP-статусы и пишет JSON-ответы.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/gateway/storage/proofs"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/admin"
	"dispatch/internal/service/claim"
	"dispatch/internal/service/courier"
	"dispatch/internal/service/delivery"
	"dispatch/internal/service/presence"
	"dispatch/internal/service/route"
	"dispatch/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Порядок важен: клиентские ошибки внутри ErrUploadFailed (битое фото) дают 400, а не 502.
var statuses = []struct {
	status int
	errs   []error
}{
	{
		status: http.StatusBadRequest,
		errs: []error{
			entities.ErrInvalidOrderID,
			entities.ErrUnknownStatus,
			courier.ErrMissingRequiredFields,
			courier.ErrInvalidCourierID,
			courier.ErrInvalidName,
			courier.ErrInvalidPhone,
			courier.ErrInvalidTransport,
			courier.ErrInvalidHomeCity,
			claim.ErrInvalidCourierID,
			admin.ErrInvalidCourierID,
			admin.ErrMissingOperator,
			delivery.ErrInvalidCourierID,
			delivery.ErrInvalidStatus,
			presence.ErrInvalidCourierID,
			presence.ErrInvalidPosition,
			proofs.ErrEmptyPhoto,
			proofs.ErrUnsupportedImage,
		},
	},
	{
		status: http.StatusForbidden,
		errs:   []error{entities.ErrNotOrderOwner, entities.ErrPermissionDenied},
	},
	{
		status: http.StatusNotFound,
		errs:   []error{entities.ErrOrderNotFound, courier.ErrCourierNotFound},
	},
	{
		status: http.StatusConflict,
		errs: []error{
			entities.ErrAlreadyClaimed,
			entities.ErrInvalidTransition,
			entities.ErrReassignNotConfirmed,
			entities.ErrRejectedByCourier,
			courier.ErrConflict,
			presence.ErrStalePosition,
			presence.ErrNoSession,
		},
	},
	{
		status: http.StatusUnprocessableEntity,
		errs:   []error{route.ErrNoOrigin, route.ErrNoDestination},
	},
	{
		status: http.StatusBadGateway,
		errs:   []error{entities.ErrUploadFailed},
	},
	{
		status: http.StatusServiceUnavailable,
		errs:   []error{entities.ErrStoreUnavailable},
	},
	{
		status: http.StatusGatewayTimeout,
		errs:   []error{context.DeadlineExceeded},
	},
}

// Status возвращает HTTP-статус для ошибки сервиса, 500 для неизвестных.
func Status(err error) int {
	for _, s := range statuses {
		for _, target := range s.errs {
			if errors.Is(err, target) {
				return s.status
			}
		}
	}
	return http.StatusInternalServerError
}

// Error пишет статус и тело {"error": ...}. Текст внутренних ошибок наружу не отдается.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	status := Status(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.With(logger.NewField("error", err)).Error("request failed")
		message = http.StatusText(status)
	}
	JSON(w, log, status, dto.Error{Error: message})
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
