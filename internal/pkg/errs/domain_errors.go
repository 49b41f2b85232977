package errs

import "errors"

// Circulation rule violations shared by the ledger and queue command layers.
// Every rejected precondition surfaces as one of these sentinels so callers
// can branch with errors.Is instead of parsing messages.
var (
	// Borrow errors
	ErrItemUnavailable       = errors.New("item unavailable")
	ErrBorrowingNotPermitted = errors.New("borrowing not permitted")

	// Loan errors
	ErrLoanNotFound        = errors.New("loan not found")
	ErrAlreadyReturned     = errors.New("loan already returned")
	ErrRenewalLimitReached = errors.New("renewal limit reached")
	ErrLoanOverdue         = errors.New("loan overdue")
	ErrReservationPending  = errors.New("reservation pending on item")

	// Reservation errors
	ErrDuplicateReservation = errors.New("duplicate reservation")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrAlreadyResolved      = errors.New("reservation already resolved")
	ErrReservationExpired   = errors.New("reservation expired")

	// Catalog errors
	ErrNoCopiesAvailable = errors.New("no copies available")
)
