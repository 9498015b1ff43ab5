package domain

import "errors"

// Sentinel errors for domain-level error handling. Construction and
// mutation failures wrap these with context; callers match them with
// errors.Is. None of them is transient: retrying with the same input
// always fails again.
var (
	ErrInvalidPrice    = errors.New("invalid_price")
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrInvalidOrderID  = errors.New("invalid_order_id")
	ErrSelfTrade       = errors.New("self_trade")
	ErrOrderNotFound   = errors.New("order_not_found")

	// ErrInternalInconsistency marks a failure that correct use of the
	// matching loop can never produce. Observing it means the loop's
	// quantity or price computation is defective; the submission that
	// triggered it is aborted rather than recovered.
	ErrInternalInconsistency = errors.New("internal_inconsistency")
)
