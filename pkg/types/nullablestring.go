package types

import "encoding/json"

type NullableString struct {
	Value string
	Valid bool // Valid is true if Value is not nil
}

// NewNullableString returns a valid NullableString holding value.
func NewNullableString(value string) NullableString {
	return NullableString{Value: value, Valid: true}
}

func (ns NullableString) String() string {
	if ns.Valid {
		return ns.Value
	}
	return ""
}

func (ns NullableString) IsNil() bool {
	return !ns.Valid
}

func (ns *NullableString) Set(value string) {
	ns.Value = value
	ns.Valid = true
}

var _ json.Marshaler = &NullableString{}
var _ json.Unmarshaler = &NullableString{}
var _ Nullable = &NullableString{}

func (ns NullableString) MarshalJSON() ([]byte, error) {
	if ns.Valid {
		return json.Marshal(ns.Value)
	}
	return json.Marshal(nil)
}

func (ns *NullableString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		ns.Value = ""
		ns.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &ns.Value); err != nil {
		return err
	}
	ns.Valid = true
	return nil
}
