package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TempIDPrefix marks row identifiers assigned locally while offline. The
// server replaces them with real ids during replay.
const TempIDPrefix = "temp-"

// IsTempID reports whether id was assigned locally while offline.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}

// Row is one record of a remote collection as an opaque JSON document.
// The cache and the sync queue never interpret a row beyond its "id" field.
type Row map[string]any

// ID returns the row identifier, or an empty string when the row has no
// usable "id" field.
func (r Row) ID() string {
	id, ok := r["id"].(string)
	if !ok {
		return ""
	}
	return id
}

// ToRow converts a typed entity into its Row representation via its JSON tags.
func ToRow(v any) (Row, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}

	var row Row
	if err = json.Unmarshal(payload, &row); err != nil {
		return nil, fmt.Errorf("decode row: %w", err)
	}
	return row, nil
}

// Decode fills dst (a pointer to a typed entity) from the row.
func (r Row) Decode(dst any) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode row: %w", err)
	}
	if err = json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("decode row into %T: %w", dst, err)
	}
	return nil
}
