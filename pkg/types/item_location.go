package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ItemLocation records where an item sits inside a store. The values are
// free text and are not validated against the store's layout hierarchy.
type ItemLocation struct {
	Section string `json:"section,omitempty"`
	Rack    string `json:"rack,omitempty"`
	Shelf   string `json:"shelf,omitempty"`
	Bin     string `json:"bin,omitempty"`
}

// Value marshals the location into JSON for Postgres.
func (loc ItemLocation) Value() (driver.Value, error) {
	buf, err := json.Marshal(loc)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the location.
func (loc *ItemLocation) Scan(value interface{}) error {
	if value == nil {
		*loc = ItemLocation{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("item location: unsupported scan type %T", value)
	}

	result := ItemLocation{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*loc = result
	return nil
}
