// Package sfntname decodes entries of an SFNT font's `name` table directly
// from the raw font bytes. It is a fallback for fonts whose name records the
// x/image sfnt package refuses to decode, and it understands TrueType
// collection headers (the first collection member is used).
package sfntname

import (
	"golang.org/x/text/encoding/unicode"
)

// Name IDs of interest, per the OpenType `name` table specification.
const (
	NameIDFamily      uint16 = 1
	NameIDSubfamily   uint16 = 2
	NameIDFull        uint16 = 4
	NameIDTypographic uint16 = 16 // typographic (a.k.a. preferred) family
)

const (
	sfntHeaderSize  = 12
	tableRecordSize = 16
	nameHeaderSize  = 6
	nameRecordSize  = 12
)

// Family returns the family name of the font contained in binary: the
// typographic family if present, the legacy family otherwise.
func Family(binary []byte) (string, bool) {
	if fam, ok := Lookup(binary, NameIDTypographic); ok {
		return fam, true
	}
	return Lookup(binary, NameIDFamily)
}

// Lookup returns the first decodable `name` table entry with the given
// name ID. Only Unicode BMP and Windows BMP encodings are decoded; records
// in other encodings, and malformed or out-of-bounds records, are skipped.
func Lookup(binary []byte, nameID uint16) (string, bool) {
	names := nameTable(binary)
	if names == nil {
		return "", false
	}
	count := int(u16(names[2:4]))
	stringStorageOffset := int(u16(names[4:6]))
	for i := 0; i < count; i++ {
		record := names[nameHeaderSize+i*nameRecordSize : nameHeaderSize+(i+1)*nameRecordSize]
		platform, encoding := u16(record[0:2]), u16(record[2:4])
		if u16(record[6:8]) != nameID {
			continue
		}
		if !isSupportedEncoding(platform, encoding) {
			continue
		}
		strLen := int(u16(record[8:10]))
		start := stringStorageOffset + int(u16(record[10:12]))
		end := start + strLen
		if start < 0 || end > len(names) {
			continue
		}
		value, err := decodeUTF16(names[start:end])
		if err != nil || value == "" {
			continue
		}
		return value, true
	}
	return "", false
}

// nameTable locates the `name` table inside binary and returns a slice
// covering it, or nil if the font is malformed or carries no usable table.
func nameTable(binary []byte) []byte {
	base := 0
	if len(binary) >= sfntHeaderSize && string(binary[0:4]) == "ttcf" {
		// TrueType collection: offset of the first member's table directory
		// sits right after the 12-byte ttc header.
		if len(binary) < sfntHeaderSize+4 {
			return nil
		}
		base = int(u32(binary[12:16]))
	}
	if base < 0 || base+sfntHeaderSize > len(binary) {
		return nil
	}
	numTables := int(u16(binary[base+4 : base+6]))
	recordsEnd := base + sfntHeaderSize + numTables*tableRecordSize
	if recordsEnd > len(binary) {
		return nil
	}
	for i := 0; i < numTables; i++ {
		record := binary[base+sfntHeaderSize+i*tableRecordSize : base+sfntHeaderSize+(i+1)*tableRecordSize]
		if string(record[0:4]) != "name" {
			continue
		}
		off, size := int(u32(record[8:12])), int(u32(record[12:16]))
		if off < 0 || size < nameHeaderSize || off+size > len(binary) {
			return nil
		}
		table := binary[off : off+size]
		count := int(u16(table[2:4]))
		strOff := int(u16(table[4:6]))
		if strOff > len(table) || nameHeaderSize+count*nameRecordSize > len(table) {
			return nil
		}
		return table
	}
	return nil
}

func isSupportedEncoding(platform, encoding uint16) bool {
	const (
		platformUnicode = 0
		platformWindows = 3
	)
	return (platform == platformUnicode && encoding == 3) ||
		(platform == platformWindows && encoding == 1)
}

func decodeUTF16(str []byte) (string, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	s, err := enc.NewDecoder().Bytes(str)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

func u16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}
