package elfhdr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ExitCode is the process exit status for every failure of the reader
const ExitCode = 98

// UsageError reports a wrong number of command-line arguments
type UsageError struct {
	Program string
	Got     int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Usage: %s elf_filename", e.Program)
}

// OpenError reports that the target path could not be opened for reading
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("Unable to open file '%s'", e.Path)
}

func (e *OpenError) Unwrap() error { return e.Err }

// TruncatedReadError reports that fewer than HeaderSize bytes could be read
type TruncatedReadError struct {
	Path string
	Read int
	Err  error
}

func (e *TruncatedReadError) Error() string {
	return fmt.Sprintf("Unable to read ELF header from file '%s'", e.Path)
}

func (e *TruncatedReadError) Unwrap() error { return e.Err }

// MagicMismatchError reports that the identification bytes do not start with the ELF magic
type MagicMismatchError struct {
	Path  string
	Magic [4]byte
}

func (e *MagicMismatchError) Error() string {
	return fmt.Sprintf("'%s' is not an ELF file", e.Path)
}

// WithPath fills in the path on errors produced by path-less operations
// such as Validate, so the diagnostic names the file being inspected.
func WithPath(err error, path string) error {
	var mm *MagicMismatchError
	if errors.As(err, &mm) && mm.Path == "" {
		mm.Path = path
	}
	var tr *TruncatedReadError
	if errors.As(err, &tr) && tr.Path == "" {
		tr.Path = path
	}
	return err
}
