package services

import "errors"

var (
	ErrUnknown         = errors.New("[service]: unknown error")
	ErrRecordNotFound  = errors.New("[service]: record not found")
	ErrDuplicateEmail  = errors.New("[service]: duplicate email")
	ErrInvalidInput    = errors.New("[service]: invalid input")
	ErrForbidden       = errors.New("[service]: forbidden")
	ErrUnauthenticated = errors.New("[service]: unauthenticated")
)
