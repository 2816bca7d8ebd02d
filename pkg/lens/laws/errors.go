package laws

import "errors"

var (
	ErrGetSet   = errors.New("lens law GetSet violated")
	ErrSetGet   = errors.New("lens law SetGet violated")
	ErrSetSet   = errors.New("lens law SetSet violated")
	ErrSetTwice = errors.New("lens law SetTwice violated")
)

// Errors flattens an error built with errors.Join back into its parts.
func Errors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
