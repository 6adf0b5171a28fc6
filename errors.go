package result

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every construction-time rejection.
// Callers detect rejections with errors.Is:
//
//	_, err := result.Created(user, "", nil)
//	if errors.Is(err, result.ErrInvalidArgument) {
//	    // fix the factory inputs; this is a caller bug, not a domain failure
//	}
//
// Construction rejections are distinct from domain failures: an Outcome in a
// failure category is a successfully constructed value, returned through the
// normal path, never raised as an error.
var ErrInvalidArgument = errors.New("invalid argument")

// invalidArgf builds a construction rejection wrapping ErrInvalidArgument.
func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
