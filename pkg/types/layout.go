package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Shelf is a labelled shelf holding a set of bin labels.
type Shelf struct {
	Label string   `json:"label"`
	Bins  []string `json:"bins,omitempty"`
}

// Rack is an ordered sequence of shelves.
type Rack struct {
	Label   string  `json:"label"`
	Shelves []Shelf `json:"shelves,omitempty"`
}

// Section is an ordered sequence of racks.
type Section struct {
	Label string `json:"label"`
	Racks []Rack `json:"racks,omitempty"`
}

// StoreLayout is the nested location hierarchy persisted as JSONB.
// Ordering of sections, racks and shelves is significant.
type StoreLayout []Section

// Value marshals the layout into JSON for Postgres.
func (l StoreLayout) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	buf, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the layout.
func (l *StoreLayout) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("store layout: unsupported scan type %T", value)
	}

	result := StoreLayout{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*l = result
	return nil
}
