package schemastore

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"

	"github.com/golang/snappy"
)

// NormalizeJSON re-encodes a JSON value with sorted object keys and no
// insignificant whitespace. Numbers keep their literal form.
func NormalizeJSON(b []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func HexEncodedSHA512(b []byte) string {
	sum := sha512.Sum512(b)
	return hex.EncodeToString(sum[:])
}

func Compress(b []byte) []byte {
	return snappy.Encode(nil, b)
}

func Decompress(b []byte) ([]byte, error) {
	return snappy.Decode(nil, b)
}
