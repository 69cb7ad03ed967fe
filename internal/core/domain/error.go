package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrTokenCreation              = errors.New("error creating token")
	ErrForbidden                  = errors.New("admin access required")

	// * Business errors.
	ErrOrderNotFound        = errors.New("order not found")
	ErrProductNotInOrder    = errors.New("product not found in this order")
	ErrPaymentFieldsMissing = errors.New("missing required fields: productId, paymentMethod, amount")
	ErrPaymentDuplicate     = errors.New("payment already recorded for this order item")
)
