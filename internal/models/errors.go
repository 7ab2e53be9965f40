package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrValidation       = errors.New("invalid data")

	ErrInternalIDNotUnique  = errors.New("the internal transaction id is already in use")
	ErrTransactionImmutable = errors.New("transactions cannot be modified or deleted once recorded")
)
