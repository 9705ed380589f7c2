package route

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrNotAllowed            = errors.New("action is not allowed for this role")

	ErrDriverNotFound   = errors.New("driver not found")
	ErrDriverNoDistrict = errors.New("driver has no assigned district")
	ErrRouteNotFound    = errors.New("route not found")
	ErrRouteClosed      = errors.New("route is closed")
)
