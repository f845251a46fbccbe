package schemastore

import (
	"encoding/json"

	"github.com/mugiliam/contentcatalog/pkg/types"
)

// DocumentStorageRepresentation is the form in which a catalog document is
// persisted. Document holds the JSON rendering of the validated document.
type DocumentStorageRepresentation struct {
	Version  string          `json:"version"`
	Kind     string          `json:"kind"`
	Name     string          `json:"name"`
	Scheme   types.Scheme    `json:"scheme"`
	Document json.RawMessage `json:"document"`
}

// Serialize converts the DocumentStorageRepresentation to a JSON byte array
func (s *DocumentStorageRepresentation) Serialize() ([]byte, error) {
	return json.Marshal(s)
}

// GetHash returns the SHA-512 hash of the normalized DocumentStorageRepresentation
func (s *DocumentStorageRepresentation) GetHash() string {
	sz, err := s.Serialize()
	if err != nil {
		return ""
	}
	// Normalize the JSON, so 2 equivalent representations yield the same hash
	nsz, err := NormalizeJSON(sz)
	if err != nil {
		return ""
	}
	return HexEncodedSHA512(nsz)
}

// Size returns the approximate size of the DocumentStorageRepresentation in bytes
func (s *DocumentStorageRepresentation) Size() int {
	return len(s.Document) + len(s.Version) + len(s.Kind) + len(s.Name)
}

// Compressed returns the snappy encoded serialization.
func (s *DocumentStorageRepresentation) Compressed() ([]byte, error) {
	sz, err := s.Serialize()
	if err != nil {
		return nil, err
	}
	return Compress(sz), nil
}

// FromCompressed restores a representation written by Compressed.
func FromCompressed(b []byte) (*DocumentStorageRepresentation, error) {
	sz, err := Decompress(b)
	if err != nil {
		return nil, err
	}
	s := &DocumentStorageRepresentation{}
	if err := json.Unmarshal(sz, s); err != nil {
		return nil, err
	}
	return s, nil
}
