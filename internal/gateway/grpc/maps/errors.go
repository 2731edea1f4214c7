package maps

import "errors"

var (
	ErrEmptyLabel    = errors.New("maps service returned empty place label")
	ErrInvalidRoute  = errors.New("maps service returned malformed route")
	ErrInvalidRecord = errors.New("maps service returned malformed record")
)
