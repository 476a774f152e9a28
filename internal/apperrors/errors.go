package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRateUnavailable indicates that no exchange-rate table could be obtained,
// not even a stale cached one. Callers degrade to original-currency figures.
var ErrRateUnavailable = errors.New("exchange rates unavailable")
