/*
Package fontmap provides an insertion-ordered mapping from logical font
names to font file references.

A file reference is either a bare file name, to be resolved against a
font directory by the consumer, or an absolute path used verbatim.
The mapping is the shared artifact between the map builder (package
fcscan) and the resolver (package plotfont): the builder emits it as a
flat JSON object, the resolver reads it back as an override layer.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontmap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Map is a mutable string→string mapping that remembers the order in which
// keys were first inserted. Re-setting an existing key updates its value but
// keeps its original position.
//
// Map is not safe for concurrent use.
type Map struct {
	keys    []string
	entries map[string]string
}

// New creates an empty Map.
func New() *Map {
	return &Map{entries: make(map[string]string)}
}

// FromPairs creates a Map from (key, value) pairs in the given order.
// Duplicate keys follow Set semantics: the first occurrence fixes the
// position, the last occurrence wins the value.
func FromPairs(pairs ...[2]string) *Map {
	m := New()
	for _, p := range pairs {
		m.Set(p[0], p[1])
	}
	return m
}

// Set inserts or updates an entry.
func (m *Map) Set(key, value string) {
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = value
}

// SetIfAbsent inserts an entry only if the key is not yet present.
// It reports whether the entry was inserted.
func (m *Map) SetIfAbsent(key, value string) bool {
	if _, ok := m.entries[key]; ok {
		return false
	}
	m.keys = append(m.keys, key)
	m.entries[key] = value
	return true
}

// Get returns the value for key, and whether the key is present.
func (m *Map) Get(key string) (string, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns a snapshot of all keys in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Merge overlays other onto m: every entry of other is Set on m, i.e.,
// values from other win on key collision, while positions of keys already
// present in m are kept.
func (m *Map) Merge(other *Map) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		m.Set(k, other.entries[k])
	}
}

// MergeFlat overlays a plain (unordered) map onto m. Keys new to m are
// appended in unspecified order; use Merge for order-sensitive overlays.
func (m *Map) MergeFlat(flat map[string]string) {
	for k, v := range flat {
		m.Set(k, v)
	}
}

// Clone returns a deep copy of m.
func (m *Map) Clone() *Map {
	c := New()
	for _, k := range m.keys {
		c.Set(k, m.entries[k])
	}
	return c
}

// MarshalJSON encodes the mapping as a flat JSON object, preserving
// insertion order of the keys. (encoding/json would sort a plain Go map.)
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.entries[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalIndent encodes the mapping like MarshalJSON, indented with the
// given number of spaces per level. indent <= 0 yields compact output.
func (m *Map) MarshalIndent(indent int) ([]byte, error) {
	b, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if indent <= 0 {
		return b, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", spaces(indent)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object into m, replacing its contents.
// Key order of the JSON document is preserved. Any document that is not an
// object with string values only is rejected.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("font map must be a JSON object, have %v", tok)
	}
	m.keys = nil
	m.entries = make(map[string]string)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string) // inside an object, keys are always strings
		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		val, ok := valTok.(string)
		if !ok {
			return fmt.Errorf("font map entry %q must map to a string, have %v", key, valTok)
		}
		m.Set(key, val)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return err
	}
	return nil
}

func spaces(n int) string {
	const many = "                                "
	if n > len(many) {
		n = len(many)
	}
	return many[:n]
}
