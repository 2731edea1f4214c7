package entities

import "errors"

var (
	ErrAlreadyClaimed    = errors.New("order already claimed by another courier")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrStoreUnavailable  = errors.New("order store unavailable")
	ErrUploadFailed      = errors.New("proof photo upload failed")
	ErrPermissionDenied  = errors.New("permission denied")

	ErrOrderNotFound        = errors.New("order not found")
	ErrUnknownStatus        = errors.New("unknown order status")
	ErrNotOrderOwner        = errors.New("order is assigned to another courier")
	ErrRejectedByCourier    = errors.New("order was rejected by this courier")
	ErrReassignNotConfirmed = errors.New("order is assigned to another courier, reassignment must be confirmed")
	ErrInvalidOrderID       = errors.New("invalid order id")
)
