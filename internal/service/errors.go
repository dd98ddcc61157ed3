package service

import "errors"

var (
	// ErrInvalidCredentials is returned when no roster entry matches the
	// supplied email and password exactly.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering with an email that already
	// exists in the roster.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotAuthenticated is returned when an operation requires a session
	// user and none is set.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrMissingLocation is returned when a ride request has an empty pickup
	// or destination.
	ErrMissingLocation = errors.New("pickup and destination are required")

	// ErrNoActiveMatch is returned when confirming or cancelling without a
	// matched driver.
	ErrNoActiveMatch = errors.New("no matched driver")

	// ErrNoSearchToRetry is returned when retrying outside the
	// no-driver-available state.
	ErrNoSearchToRetry = errors.New("no failed search to retry")

	// ErrNoUpcomingRide is returned when no upcoming ride record exists.
	ErrNoUpcomingRide = errors.New("no upcoming ride")

	// ErrNoPendingPayment is returned when confirming payment with nothing
	// staged.
	ErrNoPendingPayment = errors.New("no pending payment")

	// ErrNoPaymentMethod is returned when confirming payment before a method
	// has been selected.
	ErrNoPaymentMethod = errors.New("no payment method selected")

	// ErrInvalidPaymentMethod is returned when selecting an unknown method.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInsufficientFunds is returned when the wallet balance cannot cover
	// the pending payment.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrMalformedAmount is returned when a cost string cannot be parsed.
	ErrMalformedAmount = errors.New("malformed amount")

	// ErrInvalidAmount is returned when a top-up amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")
)
