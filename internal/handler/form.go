package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// optionalInt is a nullable integer field. It accepts JSON numbers, numeric
// strings and null, and plain form values where "" and "null" mean unset.
type optionalInt struct {
	value int64
	set   bool
}

// UnmarshalParam implements echo.BindUnmarshaler for form and query values.
func (o *optionalInt) UnmarshalParam(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		*o = optionalInt{}
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*o = optionalInt{value: v, set: true}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *optionalInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*o = optionalInt{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return o.UnmarshalParam(s)
	}
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = optionalInt{value: v, set: true}
	return nil
}

// id returns the value as a foreign key; unset or non-positive means NULL.
func (o optionalInt) id() *uint {
	if !o.set || o.value <= 0 {
		return nil
	}
	id := uint(o.value)
	return &id
}

// intOr returns the value, or def when unset.
func (o optionalInt) intOr(def int) int {
	if !o.set {
		return def
	}
	return int(o.value)
}

// nullable maps an empty or blank string to NULL.
func nullable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
