package domain

import "errors"

// Error categories for a run. Adapters wrap these with fmt.Errorf("...: %w")
// adding the file path, column or line, so callers test with errors.Is.
var (
	// ErrFileAccess reports an input file that is missing or unreadable.
	ErrFileAccess = errors.New("file access error")
	// ErrSchema reports a missing column or a value that does not parse as
	// the column's type.
	ErrSchema = errors.New("schema error")
	// ErrEmptyDataset reports an aggregate requested over zero rows.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrOutputWrite reports an artifact that could not be written.
	ErrOutputWrite = errors.New("output write error")
)
