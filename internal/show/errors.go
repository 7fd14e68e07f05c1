package show

import "errors"

var (
	// ErrDisplayUnavailable indicates the display surface could not be acquired.
	ErrDisplayUnavailable = errors.New("show: display unavailable")
	ErrUnknownEvent       = errors.New("show: unknown event")
)
