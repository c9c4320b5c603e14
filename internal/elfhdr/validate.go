package elfhdr

// Magic is the byte sequence every ELF file starts with
var Magic = [4]byte{0x7f, 'E', 'L', 'F'}

// Validate checks the magic bytes at the start of raw
func Validate(raw RawHeader) error {
	var got [4]byte
	copy(got[:], raw[:len(Magic)])
	if got != Magic {
		return &MagicMismatchError{Magic: got}
	}
	return nil
}
