package route

import "errors"

var (
	ErrNoOrigin      = errors.New("courier position is unknown")
	ErrNoDestination = errors.New("order has no destination coordinates")
)
