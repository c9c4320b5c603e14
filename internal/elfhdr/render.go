package elfhdr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// labelWidth pads field labels so values start at a fixed column
const labelWidth = 35

// Render writes the text report for h to w in the fixed field order
func Render(w io.Writer, h Header) error {
	var buf bytes.Buffer

	buf.WriteString("ELF Header:\n")
	fmt.Fprintf(&buf, "  Magic:   %s\n", magicString(h.Ident))
	writeField(&buf, "Class:", h.ClassName())
	writeField(&buf, "Data:", h.DataName())
	writeField(&buf, "Version:", h.VersionString())
	writeField(&buf, "OS/ABI:", h.OSABIName())
	writeField(&buf, "ABI Version:", fmt.Sprintf("%d", h.ABIVersion))
	writeField(&buf, "Type:", h.TypeName())
	writeField(&buf, "Entry point address:", entryString(h.Entry))

	_, err := w.Write(buf.Bytes())
	return err
}

func writeField(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %-*s%s\n", labelWidth, label, value)
}

func magicString(ident [identSize]byte) string {
	parts := make([]string, len(ident))
	for i, b := range ident {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}

func entryString(entry uint64) string {
	return fmt.Sprintf("0x%x", entry)
}

// Report is the machine-readable form of a rendered header
type Report struct {
	Magic             string `json:"magic"`
	Class             string `json:"class"`
	Data              string `json:"data"`
	Version           string `json:"version"`
	OSABI             string `json:"os_abi"`
	ABIVersion        uint8  `json:"abi_version"`
	Type              string `json:"type"`
	EntryPointAddress string `json:"entry_point_address"`
}

// NewReport builds the display values for h
func NewReport(h Header) Report {
	return Report{
		Magic:             magicString(h.Ident),
		Class:             h.ClassName(),
		Data:              h.DataName(),
		Version:           h.VersionString(),
		OSABI:             h.OSABIName(),
		ABIVersion:        h.ABIVersion,
		Type:              h.TypeName(),
		EntryPointAddress: entryString(h.Entry),
	}
}

// RenderJSON writes h to w as an indented JSON object
func RenderJSON(w io.Writer, h Header) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewReport(h))
}
