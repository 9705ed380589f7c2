package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidMobile         = errors.New("invalid mobile number")
	ErrInvalidSize           = errors.New("invalid parcel size")
	ErrInvalidPaymentMode    = errors.New("invalid payment mode")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidDistrict       = errors.New("invalid destination district")
	ErrUnknownArea           = errors.New("unknown destination area")

	ErrShopResolution = errors.New("source shop could not be resolved")
	ErrShopNotFound   = errors.New("shop not found")
	ErrParcelNotFound = errors.New("parcel not found")
	ErrNotAllowed     = errors.New("action is not allowed for this role")

	ErrInvalidTransition = errors.New("status transition is not allowed")
	ErrOTPMismatch       = errors.New("delivery otp mismatch")
	ErrNoActiveOTP       = errors.New("parcel has no active delivery otp")
	ErrTooManyAttempts   = errors.New("too many failed otp attempts")
)
