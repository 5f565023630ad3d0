package analytics

import "errors"

var (
	// ErrInvalidFilter means the filter name is not one of
	// today|weekly|monthly|yearly|custom.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInvalidRange means a custom range is missing a bound or a bound
	// failed to parse. Raised before any query is issued.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrUnauthorizedScope means the actor's role does not permit the
	// requested scope, e.g. a counsellor asking for another counsellor's data.
	ErrUnauthorizedScope = errors.New("unauthorized scope")
)
