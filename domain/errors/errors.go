package errors

import (
	"errors"
	"fmt"
)

// Error categories. Every specific error below wraps exactly one of them, so callers
// can branch with errors.Is(err, ErrLoad) without knowing the detail.
var (
	ErrLoad   = errors.New("load error")
	ErrParse  = errors.New("parse error")
	ErrDomain = errors.New("domain error")
)

var (
	ErrUnknownCity       = fmt.Errorf("%w: unknown city", ErrLoad)
	ErrSourceUnavailable = fmt.Errorf("%w: trip source unavailable", ErrLoad)
	ErrMissingColumn     = fmt.Errorf("%w: missing required column", ErrLoad)
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported source format", ErrLoad)
	ErrInvalidTimestamp  = fmt.Errorf("%w: invalid timestamp", ErrParse)
	ErrInvalidNumber     = fmt.Errorf("%w: invalid number", ErrParse)
	ErrNegativeDuration  = fmt.Errorf("%w: negative duration", ErrDomain)
	ErrDurationTooLarge  = fmt.Errorf("%w: duration out of range", ErrDomain)
	ErrInvalidMonth      = fmt.Errorf("%w: invalid month", ErrDomain)
	ErrInvalidWeekday    = fmt.Errorf("%w: invalid weekday", ErrDomain)
)
