package teams

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError is returned when no table entry carries the requested alias.
type NotFoundError struct {
	Input string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unable to find team name %q, please try the three letter team abbreviation", e.Input)
}

// AsNotFoundError attempts to unwrap an error into a NotFoundError.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

// Resolve returns the id of the first entry, in table order, whose aliases
// contain the lowercased input.
func (t Table) Resolve(input string) (int, error) {
	needle := strings.ToLower(input)
	for _, e := range t.entries {
		if e.Has(needle) {
			return e.ID, nil
		}
	}
	return 0, &NotFoundError{Input: input}
}
