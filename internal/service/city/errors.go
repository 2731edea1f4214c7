package city

import "errors"

var ErrEmptyCatalog = errors.New("city catalog is empty")
