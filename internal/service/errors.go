package service

import "errors"

// 业务哨兵错误，由 handler 层映射为响应码与 i18n 文案
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailExists         = errors.New("email already registered")
	ErrUsernameExists      = errors.New("username already taken")
	ErrUserDisabled        = errors.New("user disabled")
	ErrWeakPassword        = errors.New("password too weak")
	ErrInvalidPassword     = errors.New("password incorrect")
	ErrProductDuplicate    = errors.New("product already exists")
	ErrProductOutOfStock   = errors.New("product out of stock")
	ErrSlugExists          = errors.New("slug already exists")
	ErrCategoryInUse       = errors.New("category still has products")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrAddressRequired     = errors.New("delivery address required")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderStatusUnknown  = errors.New("unknown order status")
	ErrOrderStatusTerminal = errors.New("order status is terminal")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrProfileEmpty        = errors.New("nothing to update")
	ErrCaptchaRequired     = errors.New("captcha required")
	ErrCaptchaInvalid      = errors.New("captcha invalid")
	ErrCaptchaUnavailable  = errors.New("captcha unavailable")
	ErrRoleUnknown         = errors.New("unknown role")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)
