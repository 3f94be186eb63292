package worklocation

import "errors"

var (
	ErrDayNotActionable = errors.New("Location cannot be set for this day")
)
