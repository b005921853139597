package application

import "errors"

// ErrIOFailure matches any *IOError through errors.Is.
var ErrIOFailure = errors.New("io failure")

// IOError reports a failure to read the searched file or to write results.
// Its message is the underlying cause.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIOFailure.
func (e *IOError) Is(target error) bool {
	return target == ErrIOFailure
}
