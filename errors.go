package realincome

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoRecords reports a well-formed document or range that yielded zero
// usable records. Call sites wrap it with the constraint that excluded
// everything.
var ErrNoRecords = errors.New("no records found")

// StatusError is returned when a remote source answers with a non-success
// status. The body is kept because the sources put their diagnostics there.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote returned status %d: %s", e.Status, strings.TrimSpace(e.Body))
}
