package enums

import "fmt"

// ActivityAction identifies the kind of inventory mutation an audit entry records.
type ActivityAction string

const (
	ActivityActionAdd            ActivityAction = "add"
	ActivityActionQuantityChange ActivityAction = "quantity_change"
	ActivityActionMove           ActivityAction = "move"
	ActivityActionRemove         ActivityAction = "remove"
	ActivityActionEdit           ActivityAction = "edit"
)

var validActivityActions = []ActivityAction{
	ActivityActionAdd,
	ActivityActionQuantityChange,
	ActivityActionMove,
	ActivityActionRemove,
	ActivityActionEdit,
}

// String implements fmt.Stringer.
func (a ActivityAction) String() string {
	return string(a)
}

// IsValid reports whether the value is a known ActivityAction.
func (a ActivityAction) IsValid() bool {
	for _, candidate := range validActivityActions {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseActivityAction converts raw input into an ActivityAction.
func ParseActivityAction(value string) (ActivityAction, error) {
	for _, candidate := range validActivityActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid activity action %q", value)
}
