package elfhdr

import (
	"debug/elf"
	"fmt"
)

// osabiARMAEABI is the ARM EABI OS/ABI code.
const osabiARMAEABI elf.OSABI = 64

var classNames = map[elf.Class]string{
	elf.ELFCLASSNONE: "NONE (Unknown class)",
	elf.ELFCLASS32:   "ELF32",
	elf.ELFCLASS64:   "ELF64",
}

var dataNames = map[elf.Data]string{
	elf.ELFDATANONE: "NONE (Unknown data format)",
	elf.ELFDATA2LSB: "2's complement, little endian",
	elf.ELFDATA2MSB: "2's complement, big endian",
}

// OS/ABI codes are sparse and vendor-extensible.
var osabiNames = map[elf.OSABI]string{
	elf.ELFOSABI_NONE:       "UNIX - System V",
	elf.ELFOSABI_HPUX:       "HP-UX",
	elf.ELFOSABI_NETBSD:     "NetBSD",
	elf.ELFOSABI_LINUX:      "Linux",
	elf.ELFOSABI_SOLARIS:    "Solaris",
	elf.ELFOSABI_AIX:        "AIX",
	elf.ELFOSABI_IRIX:       "IRIX",
	elf.ELFOSABI_FREEBSD:    "FreeBSD",
	elf.ELFOSABI_TRU64:      "TRU64",
	elf.ELFOSABI_MODESTO:    "Novell Modesto",
	elf.ELFOSABI_OPENBSD:    "OpenBSD",
	osabiARMAEABI:           "ARM EABI",
	elf.ELFOSABI_ARM:        "ARM",
	elf.ELFOSABI_STANDALONE: "Standalone (embedded) application",
}

var typeNames = map[elf.Type]string{
	elf.ET_NONE:   "NONE (Unknown type)",
	elf.ET_REL:    "REL (Relocatable file)",
	elf.ET_EXEC:   "EXEC (Executable file)",
	elf.ET_DYN:    "DYN (Shared object file)",
	elf.ET_CORE:   "CORE (Core file)",
	elf.ET_LOPROC: "LOPROC (Processor-specific)",
	elf.ET_HIPROC: "HIPROC (Processor-specific)",
}

func unrecognized(v uint64) string {
	return fmt.Sprintf("<unrecognized-%d>", v)
}

// ClassName returns the display name of the class byte
func (h Header) ClassName() string {
	if name, ok := classNames[h.Class]; ok {
		return name
	}
	return unrecognized(uint64(h.Class))
}

// DataName returns the display name of the data encoding byte
func (h Header) DataName() string {
	if name, ok := dataNames[h.Data]; ok {
		return name
	}
	return unrecognized(uint64(h.Data))
}

// VersionString labels every version as current, including values other than EV_CURRENT.
func (h Header) VersionString() string {
	return fmt.Sprintf("%d (current)", h.Version)
}

// OSABIName returns the display name of the OS/ABI byte
func (h Header) OSABIName() string {
	if name, ok := osabiNames[h.OSABI]; ok {
		return name
	}
	return unrecognized(uint64(h.OSABI))
}

// TypeName returns the display name of the object type
func (h Header) TypeName() string {
	if name, ok := typeNames[h.Type]; ok {
		return name
	}
	return unrecognized(uint64(h.Type))
}
