package markerrors

import "errors"

// Repository-level errors
var (
	ErrGigNotFound  = errors.New("gig not found")
	ErrBidNotFound  = errors.New("bid not found")
	ErrUserNotFound = errors.New("user not found")
	ErrDuplicateBid = errors.New("bid already submitted for this gig")
	ErrEmailTaken   = errors.New("email already registered")
	// ErrContention signals a transaction aborted by a conflicting
	// concurrent writer; the caller may resubmit.
	ErrContention = errors.New("conflicting concurrent update")
)

// business logic errors
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrForbidden      = errors.New("not authorized for this resource")
	ErrGigNotOpen     = errors.New("gig is not accepting bids")
	ErrSelfBid        = errors.New("cannot bid on own gig")
	ErrGigAssigned    = errors.New("gig has already been assigned")
	ErrBadCredentials = errors.New("incorrect email or password")
)
