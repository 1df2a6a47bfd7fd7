package models

import "errors"

// Sentinel error kinds for the decision core. Callers match with errors.Is
// and the API layer maps each kind to an HTTP status.
//
// A rejected negotiation is not an error; it is a valid Decision.
var (
	// ErrInvalidIntent marks a malformed or incomplete intent, rejected
	// before any external call is made.
	ErrInvalidIntent = errors.New("invalid intent")

	// ErrUnknownAsset marks an asset identifier the market-data provider
	// does not recognize.
	ErrUnknownAsset = errors.New("unknown asset")

	// ErrDataUnavailable marks a transient market-data failure; the
	// evaluation is aborted and no payment is attempted.
	ErrDataUnavailable = errors.New("market data unavailable")

	// ErrPaymentFailed marks a gateway-reported payment failure, surfaced
	// verbatim without retries.
	ErrPaymentFailed = errors.New("payment failed")
)
