package service

import "errors"

var (
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrRefreshTokenInvalid  = errors.New("refresh token invalid or revoked")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserDisabled         = errors.New("user is disabled")
	ErrNotFound             = errors.New("not found")
	ErrNotOwned             = errors.New("record does not belong to this user")
	ErrCampDayOutsideCamp   = errors.New("date falls outside the camp date range")
	ErrNotRegistered        = errors.New("athlete has no confirmed registration for this camp")
	ErrAlreadyCheckedIn     = errors.New("athlete is already checked in")
	ErrNotCheckedIn         = errors.New("athlete is not checked in")
	ErrPickupTokenInvalid   = errors.New("pickup token invalid")
	ErrManualReasonRequired = errors.New("manual checkout requires a reason")
	ErrApplicationFinalized = errors.New("application has already been decided")
	ErrInvalidStatusChange  = errors.New("invalid status transition")
	ErrVariantNotFound      = errors.New("product variant not found")
	ErrInvalidQuantity      = errors.New("quantity must be zero or positive")
	ErrUnknownExportType    = errors.New("unknown export type")
	ErrTerritoryHasLicensee = errors.New("territory already has an active licensee")
)
