package datatable

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Errors returned by Table. Compare with errors.Is.
var (
	// ErrInvalidConfiguration indicates a table that cannot be built from its
	// options, such as a page size below 1.
	ErrInvalidConfiguration = constError("invalid table configuration")

	// ErrPageOutOfRange indicates a page number outside [1, PageCount].
	ErrPageOutOfRange = constError("page out of range")

	// ErrRowOutOfRange indicates a row index outside the visible rows.
	ErrRowOutOfRange = constError("row out of range")
)
