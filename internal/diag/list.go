package diag

import "strings"

// List aggregates errors from several fields or components. It supports
// errors.Is and errors.As through Unwrap.
type List []error

// Error lists every aggregated error on its own line.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return "multiple errors:\n- " + strings.Join(msgs, "\n- ")
}

// Unwrap exposes the aggregated errors to errors.Is and errors.As.
func (l List) Unwrap() []error {
	return l
}

// Append adds err to the list, flattening nested lists and skipping nil.
func (l List) Append(err error) List {
	if err == nil {
		return l
	}
	if nested, ok := err.(List); ok {
		for _, e := range nested {
			l = l.Append(e)
		}
		return l
	}
	return append(l, err)
}

// ErrOrNil returns nil for an empty list and the list otherwise.
func (l List) ErrOrNil() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
