package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNotAccountOwner          = errors.New("cannot act on another user's account")
	ErrCurrentPasswordRequired  = errors.New("current password is required to change password")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")

	ErrRecipeNameRequired = errors.New("missing required field (name)")
	ErrInvalidRecipeID    = errors.New("invalid recipe id format")
	ErrInvalidUserID      = errors.New("invalid user id format")
)
