package delivery

import "errors"

var (
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrInvalidStatus    = errors.New("invalid target status")
)
