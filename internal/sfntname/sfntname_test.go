package sfntname

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

// synthFont builds a minimal single-table SFNT stream holding one `name`
// table with the given records. Checksums are not validated by this package
// and are left zero.
func synthFont(t *testing.T, records []nameRecord) []byte {
	t.Helper()
	var storage []byte
	var recBytes []byte
	for _, r := range records {
		var utf16 []byte
		for _, ru := range r.value {
			utf16 = binary.BigEndian.AppendUint16(utf16, uint16(ru))
		}
		rec := make([]byte, nameRecordSize)
		binary.BigEndian.PutUint16(rec[0:2], r.platform)
		binary.BigEndian.PutUint16(rec[2:4], r.encoding)
		binary.BigEndian.PutUint16(rec[6:8], r.nameID)
		binary.BigEndian.PutUint16(rec[8:10], uint16(len(utf16)))
		binary.BigEndian.PutUint16(rec[10:12], uint16(len(storage)))
		recBytes = append(recBytes, rec...)
		storage = append(storage, utf16...)
	}

	name := make([]byte, nameHeaderSize)
	binary.BigEndian.PutUint16(name[2:4], uint16(len(records)))
	binary.BigEndian.PutUint16(name[4:6], uint16(nameHeaderSize+len(recBytes)))
	name = append(name, recBytes...)
	name = append(name, storage...)

	font := make([]byte, sfntHeaderSize+tableRecordSize)
	binary.BigEndian.PutUint32(font[0:4], 0x00010000)
	binary.BigEndian.PutUint16(font[4:6], 1)
	copy(font[12:16], "name")
	binary.BigEndian.PutUint32(font[20:24], uint32(len(font)))
	binary.BigEndian.PutUint32(font[24:28], uint32(len(name)))
	return append(font, name...)
}

type nameRecord struct {
	platform, encoding, nameID uint16
	value                      string
}

func TestLookupFamily(t *testing.T) {
	font := synthFont(t, []nameRecord{
		{3, 1, NameIDFamily, "Futura ND"},
		{3, 1, NameIDSubfamily, "Book"},
	})
	fam, ok := Family(font)
	assert.True(t, ok)
	assert.Equal(t, "Futura ND", fam)
	sub, ok := Lookup(font, NameIDSubfamily)
	assert.True(t, ok)
	assert.Equal(t, "Book", sub)
}

func TestTypographicFamilyPreferred(t *testing.T) {
	font := synthFont(t, []nameRecord{
		{3, 1, NameIDFamily, "Futura ND Book"},
		{3, 1, NameIDTypographic, "Futura ND"},
	})
	fam, ok := Family(font)
	assert.True(t, ok)
	assert.Equal(t, "Futura ND", fam)
}

func TestUnsupportedEncodingSkipped(t *testing.T) {
	font := synthFont(t, []nameRecord{
		{1, 0, NameIDFamily, "MacRoman Entry"}, // Macintosh platform, skipped
		{0, 3, NameIDFamily, "Unicode Entry"},
	})
	fam, ok := Family(font)
	assert.True(t, ok)
	assert.Equal(t, "Unicode Entry", fam)
}

func TestCollectionHeader(t *testing.T) {
	member := synthFont(t, []nameRecord{{3, 1, NameIDFamily, "Helvetica"}})
	// ttc header: tag, version, numFonts, offset of first member
	header := make([]byte, 16)
	copy(header[0:4], "ttcf")
	binary.BigEndian.PutUint32(header[4:8], 0x00010000)
	binary.BigEndian.PutUint32(header[8:12], 1)
	binary.BigEndian.PutUint32(header[12:16], uint32(len(header)))
	font := append(header, member...)
	// member table offsets are absolute in real collections; rebuild the
	// name table offset to account for the header shift
	binary.BigEndian.PutUint32(font[len(header)+20:len(header)+24],
		uint32(len(header)+sfntHeaderSize+tableRecordSize))

	fam, ok := Family(font)
	assert.True(t, ok)
	assert.Equal(t, "Helvetica", fam)
}

func TestGarbageInput(t *testing.T) {
	_, ok := Family(nil)
	assert.False(t, ok)
	_, ok = Family([]byte("definitely not a font"))
	assert.False(t, ok)
}
