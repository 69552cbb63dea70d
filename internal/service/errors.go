package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidItemName  = errors.New("invalid item name")
	ErrInvalidItemPrice = errors.New("invalid item price")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
