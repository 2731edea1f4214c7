package proofs

import "errors"

var (
	ErrEmptyPhoto       = errors.New("proof photo is empty")
	ErrUnsupportedImage = errors.New("proof photo must be a jpeg, png or webp image")
)
