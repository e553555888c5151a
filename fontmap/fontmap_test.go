package fontmap

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestInsertionOrder(t *testing.T) {
	m := New()
	m.Set("Futura", "Futura.ttc")
	m.Set("Optima", "Optima.ttc")
	m.Set("Baskerville", "Baskerville.ttc")
	m.Set("Futura", "FuturaStd.otf") // update keeps position
	assert.Equal(t, []string{"Futura", "Optima", "Baskerville"}, m.Keys())
	v, ok := m.Get("Futura")
	assert.True(t, ok)
	assert.Equal(t, "FuturaStd.otf", v)
}

func TestSetIfAbsent(t *testing.T) {
	m := New()
	assert.True(t, m.SetIfAbsent("Foo", "/a/Foo.ttf"))
	assert.False(t, m.SetIfAbsent("Foo", "/b/Foo.ttf"))
	v, _ := m.Get("Foo")
	assert.Equal(t, "/a/Foo.ttf", v)
}

func TestMergePriority(t *testing.T) {
	base := FromPairs([2]string{"K", "A"}, [2]string{"L", "x"})
	over := FromPairs([2]string{"K", "B"}, [2]string{"M", "y"})
	base.Merge(over)
	v, _ := base.Get("K")
	assert.Equal(t, "B", v, "overlay value expected to win")
	assert.Equal(t, []string{"K", "L", "M"}, base.Keys(), "existing keys keep their position")
}

func TestOrderedJSON(t *testing.T) {
	m := FromPairs(
		[2]string{"Zapfino", "/z/Zapfino.ttf"},
		[2]string{"Avenir", "/a/Avenir.ttc"},
	)
	b, err := json.Marshal(m)
	assert.NoError(t, err)
	assert.Equal(t, `{"Zapfino":"/z/Zapfino.ttf","Avenir":"/a/Avenir.ttc"}`, string(b))

	back := New()
	assert.NoError(t, json.Unmarshal(b, back))
	if diff := cmp.Diff(m.Keys(), back.Keys()); diff != "" {
		t.Errorf("key order not preserved through JSON (-want +got):\n%s", diff)
	}
}

func TestUnmarshalRejectsNonObject(t *testing.T) {
	m := New()
	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), m))
	assert.Error(t, json.Unmarshal([]byte(`{"key": 42}`), m))
}

func TestMarshalIndent(t *testing.T) {
	m := FromPairs([2]string{"A", "a.ttf"})
	b, err := m.MarshalIndent(2)
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"A\": \"a.ttf\"\n}", string(b))
}
