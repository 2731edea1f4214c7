package presence

import "errors"

var (
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrStalePosition    = errors.New("position is older than the last known one")
	ErrNoSession        = errors.New("courier has no session, go online first")
)
