package notifiers

import "errors"

// Send failures come in two kinds. Permanent failures terminate the
// schedule; temporary failures leave it pending for the next due cycle.
// Anything unclassified is treated as temporary so a transient provider
// hiccup never silently drops a patient from the flow.

type classifiedError struct {
	permanent bool
	err       error
}

func (e *classifiedError) Error() string { return e.err.Error() }
func (e *classifiedError) Unwrap() error { return e.err }

// Permanent marks an error as non-retryable.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &classifiedError{permanent: true, err: err}
}

// Temporary marks an error as retryable.
func Temporary(err error) error {
	if err == nil {
		return nil
	}
	return &classifiedError{permanent: false, err: err}
}

func IsPermanent(err error) bool {
	var ce *classifiedError
	if errors.As(err, &ce) {
		return ce.permanent
	}
	return false
}

func IsTemporary(err error) bool {
	return err != nil && !IsPermanent(err)
}
