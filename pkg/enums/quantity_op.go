package enums

import "fmt"

// QuantityOp selects how an item quantity adjustment is applied.
type QuantityOp string

const (
	QuantityOpAdd      QuantityOp = "add"
	QuantityOpSubtract QuantityOp = "subtract"
	QuantityOpSet      QuantityOp = "set"
)

var validQuantityOps = []QuantityOp{
	QuantityOpAdd,
	QuantityOpSubtract,
	QuantityOpSet,
}

// String implements fmt.Stringer.
func (q QuantityOp) String() string {
	return string(q)
}

// IsValid reports whether the value is a known QuantityOp.
func (q QuantityOp) IsValid() bool {
	for _, candidate := range validQuantityOps {
		if candidate == q {
			return true
		}
	}
	return false
}

// ParseQuantityOp converts raw input into a QuantityOp.
func ParseQuantityOp(value string) (QuantityOp, error) {
	for _, candidate := range validQuantityOps {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid quantity op %q", value)
}
