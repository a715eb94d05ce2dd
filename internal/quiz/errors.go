package quiz

import "errors"

// ErrInsufficientData is returned when a day has fewer characters than the
// two a quiz always tests.
var ErrInsufficientData = errors.New("quiz: at least 2 characters are required")
