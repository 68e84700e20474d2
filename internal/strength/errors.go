package strength

import "fmt"

// InvalidInputError indicates a malformed argument (negative counts,
// out-of-order timestamps). Callers must not retry; the input is wrong.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}
