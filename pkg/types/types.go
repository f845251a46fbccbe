package types

import "strconv"

// RecordId identifies a record within one store.
type RecordId int

func (id RecordId) String() string {
	return strconv.Itoa(int(id))
}

// ParseRecordId parses the decimal form produced by String.
func ParseRecordId(s string) (RecordId, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return RecordId(n), true
}

type Nullable interface {
	IsNil() bool
}

const (
	CatalogKind    = "Catalog"
	CatalogVersion = "v1"
)
