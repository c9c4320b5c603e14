package elfhdr

import (
	"debug/elf"
	"encoding/binary"
)

// Offsets of the fields read from the identification block and the ELF64 header.
const (
	offClass      = 4
	offData       = 5
	offVersion    = 6
	offOSABI      = 7
	offABIVersion = 8
	offType       = 16
	offEntry      = 24
)

// Header is the decoded form of an ELF file header.
//
// Only the ELF64 layout is decoded. Class is reported as found in the
// identification bytes and does not change where Type and Entry are read from.
type Header struct {
	Ident      [identSize]byte
	Class      elf.Class
	Data       elf.Data
	Version    uint8
	OSABI      elf.OSABI
	ABIVersion uint8
	Type       elf.Type
	Entry      uint64
}

// ByteOrder returns the byte order declared by data. Anything other than
// big endian, including unrecognized encodings, is read as little endian.
func ByteOrder(data elf.Data) binary.ByteOrder {
	if data == elf.ELFDATA2MSB {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Decode interprets an already validated raw header. It never fails: values
// outside the known enumerations are kept as-is and rendered as unrecognized.
func Decode(raw RawHeader) Header {
	data := elf.Data(raw[offData])
	order := ByteOrder(data)

	return Header{
		Ident:      raw.Ident(),
		Class:      elf.Class(raw[offClass]),
		Data:       data,
		Version:    raw[offVersion],
		OSABI:      elf.OSABI(raw[offOSABI]),
		ABIVersion: raw[offABIVersion],
		Type:       elf.Type(order.Uint16(raw[offType : offType+2])),
		Entry:      order.Uint64(raw[offEntry : offEntry+8]),
	}
}

// Parse validates raw and decodes it
func Parse(raw RawHeader) (Header, error) {
	if err := Validate(raw); err != nil {
		return Header{}, err
	}
	return Decode(raw), nil
}

// ReadFile loads, validates and decodes the header of the file at path
func ReadFile(path string) (Header, error) {
	raw, err := Load(path)
	if err != nil {
		return Header{}, err
	}
	h, err := Parse(raw)
	if err != nil {
		return Header{}, WithPath(err, path)
	}
	return h, nil
}
