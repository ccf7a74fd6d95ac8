package streak

import "fmt"

// FormatError reports a completion timestamp that could not be parsed.
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid timestamp %q", e.Value)
}

func (e *FormatError) Unwrap() error { return e.Err }

// InvalidPeriodicityError reports a periodicity other than daily, weekly or monthly.
type InvalidPeriodicityError struct {
	Value string
}

func (e *InvalidPeriodicityError) Error() string {
	return fmt.Sprintf("invalid periodicity %q (want daily, weekly or monthly)", e.Value)
}
