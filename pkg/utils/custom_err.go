package utils

import "errors"

var (
	ErrProvinceNotFound = errors.New("province not found")
	ErrInvalidPage      = errors.New("invalid page parameter")
	ErrInvalidPageSize  = errors.New("invalid page size parameter")
	ErrInvalidID        = errors.New("invalid id parameter")
	ErrDataUnavailable  = errors.New("dataset unavailable")
	ErrDatabaseError    = errors.New("database error")
)
