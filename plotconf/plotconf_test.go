package plotconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedAccess(t *testing.T) {
	p := NewParams()
	p.SetString(KeyFontFamily, "Futura ND Book")
	p.SetBool(KeyUnicodeMinus, false)

	fam, ok := p.String(KeyFontFamily)
	assert.True(t, ok)
	assert.Equal(t, "Futura ND Book", fam)

	minus, ok := p.Bool(KeyUnicodeMinus)
	assert.True(t, ok)
	assert.False(t, minus)

	_, ok = p.Bool(KeyFontFamily) // wrong type
	assert.False(t, ok)
	_, ok = p.String("no.such.key")
	assert.False(t, ok)
}

func TestKeysInSetOrder(t *testing.T) {
	p := NewParams()
	p.SetBool(KeyUnicodeMinus, true)
	p.SetString(KeyFontFamily, "Optima")
	p.SetBool(KeyUnicodeMinus, false) // update keeps position
	assert.Equal(t, []string{KeyUnicodeMinus, KeyFontFamily}, p.Keys())
}

func TestDefaultIsStable(t *testing.T) {
	assert.Same(t, Default(), Default())
}
