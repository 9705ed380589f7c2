package settlement

import "errors"

var (
	ErrNotAllowed    = errors.New("action is not allowed for this role")
	ErrShopNotFound  = errors.New("shop not found")
	ErrInvalidAmount = errors.New("invalid settlement amount")
	ErrInvalidPeriod = errors.New("invalid settlement period")

	ErrAmountExceedsPending = errors.New("amount exceeds pending balance")
)
