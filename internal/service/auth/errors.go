package auth

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidMobile         = errors.New("invalid mobile number")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrInvalidDistrict       = errors.New("invalid district")

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSetupRequired отдельный сигнал для приглашенного, но не активированного
	// аккаунта: клиент ведет пользователя на настройку, а не показывает
	// "неверный пароль".
	ErrSetupRequired = errors.New("account setup required")

	ErrNotInvited          = errors.New("mobile was not invited")
	ErrAlreadyActive       = errors.New("account already active")
	ErrInvalidSetupOTP     = errors.New("invalid setup otp")
	ErrShopDetailsRequired = errors.New("shop name and owner name are required")

	ErrInviteNotAllowed    = errors.New("role is not allowed to issue this invite")
	ErrDistrictAdminExists = errors.New("district already has an admin")
	ErrMobileTaken         = errors.New("mobile already registered")
)
