// Package models defines the storefront entities exchanged with the REST API.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an opaque backend identifier. The API emits Mongo-style string ids,
// but some endpoints return numeric ids; both decode into the same value.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// decodeRef decodes a field that holds either a bare id or an embedded object
// with an "_id". The object, when present, is decoded into obj.
func decodeRef(b []byte, obj any) (ID, bool, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return "", false, nil
	}
	if b[0] != '{' {
		var id ID
		if err := json.Unmarshal(b, &id); err != nil {
			return "", false, err
		}
		return id, false, nil
	}
	var head struct {
		ID ID `json:"_id"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return "", false, err
	}
	if err := json.Unmarshal(b, obj); err != nil {
		return "", false, err
	}
	return head.ID, true, nil
}
