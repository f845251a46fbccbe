package types

import "encoding/json"

// NullableRecordId is an optional reference to a record.
type NullableRecordId struct {
	Value RecordId
	Valid bool
}

func NewNullableRecordId(id RecordId) NullableRecordId {
	return NullableRecordId{Value: id, Valid: true}
}

func (n NullableRecordId) IsNil() bool {
	return !n.Valid
}

func (n *NullableRecordId) Set(id RecordId) {
	n.Value = id
	n.Valid = true
}

func (n *NullableRecordId) Clear() {
	n.Value = 0
	n.Valid = false
}

var _ json.Marshaler = &NullableRecordId{}
var _ json.Unmarshaler = &NullableRecordId{}
var _ Nullable = &NullableRecordId{}

func (n NullableRecordId) MarshalJSON() ([]byte, error) {
	if n.Valid {
		return json.Marshal(int(n.Value))
	}
	return json.Marshal(nil)
}

func (n *NullableRecordId) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		n.Clear()
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Set(RecordId(v))
	return nil
}
