package store

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidDiscount = errors.New("invalid discount")
	ErrInvalidLineItem = errors.New("invalid line item")
	ErrInvalidStatus   = errors.New("invalid document status")
	ErrNoSnapshot      = errors.New("no snapshot stored")
)
