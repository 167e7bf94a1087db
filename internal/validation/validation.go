package validation

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CapacityError signals that a write would push a collection past one of the
// site's presentation limits. Callers match it with errors.As.
type CapacityError struct {
	Resource string
	Limit    int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: at most %d entries may be active", e.Resource, e.Limit)
}

// IsCapacity reports whether err carries a CapacityError.
func IsCapacity(err error) bool {
	var capErr *CapacityError
	return errors.As(err, &capErr)
}

// Issues flattens a field-validation error into message-per-field form for
// API responses. Nested errors use dotted keys. A nil map means the error is
// not a validation failure.
func Issues(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}
	issues := make(map[string]string, len(verrs))
	flatten("", verrs, issues)
	return issues
}

func flatten(prefix string, verrs validation.Errors, into map[string]string) {
	for field, ferr := range verrs {
		key := field
		if prefix != "" {
			key = prefix + "." + field
		}
		var nested validation.Errors
		if errors.As(ferr, &nested) {
			flatten(key, nested, into)
			continue
		}
		into[key] = ferr.Error()
	}
}
