package cells

import "errors"

var (
	// ErrCapacityExceeded signals that a fixed-capacity backing cannot hold
	// the requested number of cells.
	ErrCapacityExceeded = errors.New("cells: capacity exceeded")
	// ErrIndexOutOfBounds signals a cell index outside of [0, Len()).
	ErrIndexOutOfBounds = errors.New("cells: index out of bounds")
	// ErrSizeMismatch signals that two storages do not have the same number
	// of cells.
	ErrSizeMismatch = errors.New("cells: storage sizes differ")
	// ErrIllegalArguments is flagged whenever function parameters are invalid.
	ErrIllegalArguments = errors.New("cells: illegal arguments")
	// ErrInvalidStorage signals a violated structural invariant of a backing.
	ErrInvalidStorage = errors.New("cells: invalid storage")
)
