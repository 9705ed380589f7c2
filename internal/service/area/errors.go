package area

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDistrict       = errors.New("invalid district")
	ErrNotAllowed            = errors.New("role is not allowed to manage areas")

	ErrAreaNotFound = errors.New("area not found")
	ErrDuplicate    = errors.New("area already exists in district")
)
