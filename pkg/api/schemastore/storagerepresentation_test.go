package schemastore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"sorted keys", `{"b":1,"a":2}`, `{"a":2,"b":1}`},
		{"whitespace", "{ \"a\" : [ 1, 2 ]\n}", `{"a":[1,2]}`},
		{"nested", `{"z":{"y":true,"x":null}}`, `{"z":{"x":null,"y":true}}`},
		{"numbers kept", `{"n":1.50}`, `{"n":1.50}`},
		{"html not escaped", `{"s":"<a>"}`, `{"s":"<a>"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeJSON([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.out, string(got))
		})
	}

	_, err := NormalizeJSON([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestGetHash(t *testing.T) {
	a := &DocumentStorageRepresentation{
		Version:  "v1",
		Kind:     "Catalog",
		Name:     "operators",
		Scheme:   "experience",
		Document: json.RawMessage(`{"b":1,"a":2}`),
	}
	b := *a
	b.Document = json.RawMessage(`{ "a": 2, "b": 1 }`)
	assert.Equal(t, a.GetHash(), b.GetHash())
	assert.Len(t, a.GetHash(), 128)

	c := *a
	c.Document = json.RawMessage(`{"a":3,"b":1}`)
	assert.NotEqual(t, a.GetHash(), c.GetHash())
}

func TestCompressedRoundTrip(t *testing.T) {
	s := &DocumentStorageRepresentation{
		Version:  "v1",
		Kind:     "Catalog",
		Name:     "observables",
		Scheme:   "difficulty",
		Document: json.RawMessage(`{"records":[]}`),
	}
	b, err := s.Compressed()
	require.NoError(t, err)

	got, err := FromCompressed(b)
	require.NoError(t, err)
	assert.Equal(t, s.GetHash(), got.GetHash())
	assert.Equal(t, s.Name, got.Name)

	_, err = FromCompressed([]byte("not snappy"))
	assert.Error(t, err)
}
