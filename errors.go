package capgains

import "errors"

// Engine errors are precondition violations on the input stream. None of them
// is recoverable at this level: the caller must fix the data upstream (trade
// ordering, missing splits, reconciled holdings) and rerun.
var (
	// ErrOutOfOrder reports a transaction dated before one already processed
	// for the same security.
	ErrOutOfOrder = errors.New("transactions must be added in ascending date order")

	// ErrInsufficientLot reports a sale larger than the open position.
	// Short selling is not supported.
	ErrInsufficientLot = errors.New("sale exceeds open position")

	// ErrZeroQuantity reports a transaction with a zero amount.
	ErrZeroQuantity = errors.New("transaction amount cannot be zero")

	// ErrUnknownSecurity reports a split for a security that was never traded.
	ErrUnknownSecurity = errors.New("unknown security")

	// ErrPartialSale reports a partial lot consumption that is not strictly
	// smaller than the lot.
	ErrPartialSale = errors.New("partial sale must be strictly smaller than the lot")
)
