package admin

import "errors"

var (
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrMissingOperator  = errors.New("operator is required")
)
