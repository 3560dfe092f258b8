package services

import "errors"

// Service operations never let a raw gorm error escape: every failure is
// re-signaled as one of these kinds so handlers can map it to a fixed JSON
// error shape.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable")
	ErrInternal      = errors.New("internal error")
)
