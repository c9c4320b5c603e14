package elfhdr

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// HeaderSize is the size of an ELF64 file header in bytes
const HeaderSize = 64

// identSize is the number of identification bytes at the start of the header
const identSize = 16

// RawHeader holds the undecoded header bytes exactly as read from the file
type RawHeader [HeaderSize]byte

// Ident returns the identification bytes of the header
func (r RawHeader) Ident() [identSize]byte {
	var ident [identSize]byte
	copy(ident[:], r[:identSize])
	return ident
}

// Load opens path read-only and reads exactly HeaderSize bytes from it.
// The file is closed before Load returns.
func Load(path string) (RawHeader, error) {
	file, err := os.Open(path)
	if err != nil {
		return RawHeader{}, &OpenError{Path: path, Err: errors.WithStack(err)}
	}
	defer file.Close()

	raw, err := ReadHeader(file)
	if err != nil {
		return RawHeader{}, WithPath(err, path)
	}
	return raw, nil
}

// ReadHeader reads exactly HeaderSize bytes from r
func ReadHeader(r io.Reader) (RawHeader, error) {
	var raw RawHeader
	n, err := io.ReadFull(r, raw[:])
	if err != nil {
		return RawHeader{}, &TruncatedReadError{
			Read: n,
			Err:  errors.Wrapf(err, "read %d of %d header bytes", n, HeaderSize),
		}
	}
	return raw, nil
}
