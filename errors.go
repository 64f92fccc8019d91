package diagram

import (
	"errors"
)

// The errors returned by this package wrap one of the following, so callers
// can classify them with [errors.Is]. All of them indicate a misuse of the API
// rather than a condition worth retrying.
var (
	// ErrValidation reports malformed input to a constructor, such as a
	// polygon with fewer than three points.
	ErrValidation = errors.New("invalid input")
	// ErrStructure reports an operation that the node's kind does not
	// permit, such as attaching paths to a group.
	ErrStructure = errors.New("operation not permitted for node kind")
	// ErrUnsupported reports an operation that is not implemented for its
	// argument, such as parametric evaluation of a polyline.
	ErrUnsupported = errors.New("unsupported operation")
	// ErrLookup reports an unknown identifier.
	ErrLookup = errors.New("unknown identifier")

	// ErrDuplicateName reports that a child or path name is already taken
	// within a node.
	ErrDuplicateName = wrapErr(ErrValidation, "duplicate name")
	// ErrUnknownAnchor reports an anchor outside the nine known ones.
	ErrUnknownAnchor = wrapErr(ErrLookup, "unknown anchor")
	// ErrEmpty reports a query that needs geometry on a diagram that has
	// none.
	ErrEmpty = errors.New("diagram has no geometry")
)

type wrappedErr struct {
	msg string
	err error
}

func wrapErr(err error, msg string) error {
	return &wrappedErr{msg: msg, err: err}
}

func (e *wrappedErr) Error() string { return e.msg }
func (e *wrappedErr) Unwrap() error { return e.err }
