package models

import (
	"encoding/json"
	"time"
)

// NullableString represents a string field that can distinguish between:
// - Field absent in JSON: Set=false, Valid=false
// - Field present with null: Set=true, Valid=false
// - Field present with value: Set=true, Valid=true
//
// Go's standard JSON unmarshaling collapses "absent" and "null" into nil for
// pointer types, which is not enough for partial updates.
type NullableString struct {
	Value string
	Valid bool // true if Value is not null
	Set   bool // true if field was present in JSON
}

func (ns *NullableString) UnmarshalJSON(data []byte) error {
	ns.Set = true
	if string(data) == "null" {
		ns.Valid = false
		ns.Value = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ns.Value = s
	ns.Valid = true
	return nil
}

func (ns NullableString) MarshalJSON() ([]byte, error) {
	if !ns.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ns.Value)
}

// ToPtr returns nil if the value is null, otherwise a pointer to Value.
func (ns NullableString) ToPtr() *string {
	if !ns.Valid {
		return nil
	}
	return &ns.Value
}

// NullableTime is the time.Time counterpart of NullableString.
type NullableTime struct {
	Value time.Time
	Valid bool
	Set   bool
}

func (nt *NullableTime) UnmarshalJSON(data []byte) error {
	nt.Set = true
	if string(data) == "null" {
		nt.Valid = false
		nt.Value = time.Time{}
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	nt.Value = t
	nt.Valid = true
	return nil
}

func (nt NullableTime) MarshalJSON() ([]byte, error) {
	if !nt.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(nt.Value)
}

// ToPtr returns nil if the value is null, otherwise a pointer to Value.
func (nt NullableTime) ToPtr() *time.Time {
	if !nt.Valid {
		return nil
	}
	return &nt.Value
}

// NullableInt is the int counterpart of NullableString.
type NullableInt struct {
	Value int
	Valid bool
	Set   bool
}

func (ni *NullableInt) UnmarshalJSON(data []byte) error {
	ni.Set = true
	if string(data) == "null" {
		ni.Valid = false
		ni.Value = 0
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	ni.Value = v
	ni.Valid = true
	return nil
}

func (ni NullableInt) MarshalJSON() ([]byte, error) {
	if !ni.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ni.Value)
}

// ToPtr returns nil if the value is null, otherwise a pointer to Value.
func (ni NullableInt) ToPtr() *int {
	if !ni.Valid {
		return nil
	}
	return &ni.Value
}

// NullableFloat is the float64 counterpart of NullableString.
type NullableFloat struct {
	Value float64
	Valid bool
	Set   bool
}

func (nf *NullableFloat) UnmarshalJSON(data []byte) error {
	nf.Set = true
	if string(data) == "null" {
		nf.Valid = false
		nf.Value = 0
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	nf.Value = v
	nf.Valid = true
	return nil
}

func (nf NullableFloat) MarshalJSON() ([]byte, error) {
	if !nf.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(nf.Value)
}

// ToPtr returns nil if the value is null, otherwise a pointer to Value.
func (nf NullableFloat) ToPtr() *float64 {
	if !nf.Valid {
		return nil
	}
	return &nf.Value
}
