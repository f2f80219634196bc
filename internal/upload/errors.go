package upload

import "fmt"

// SchemaMismatchError is returned when a batch's column count does not match
// the upload kind. It is checked before any database work starts.
type SchemaMismatchError struct {
	Kind     string
	Expected int
	Actual   int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("%s: csv is expected to have %d columns, got %d", e.Kind, e.Expected, e.Actual)
}

// ParseError reports a field that could not be converted to its target type.
// Row is the zero-based index within the batch, after any skipped header.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: invalid %s %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// HashError reports a failed password hash for a user-account row.
type HashError struct {
	Row      int
	Username string
	Err      error
}

func (e *HashError) Error() string {
	return fmt.Sprintf("row %d: failed to hash password for user %s: %v", e.Row, e.Username, e.Err)
}

func (e *HashError) Unwrap() error { return e.Err }

// StoreError wraps a failure from the database itself. Op names the
// transaction stage that failed so a rolled-back batch can be diagnosed.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error (%s): %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
