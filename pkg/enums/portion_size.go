package enums

import "fmt"

// PortionSize is the serves-N radio choice on the customization form.
type PortionSize string

const (
	PortionSizeTwo  PortionSize = "2"
	PortionSizeFour PortionSize = "4"
)

var validPortionSizes = []PortionSize{
	PortionSizeTwo,
	PortionSizeFour,
}

func (p PortionSize) IsValid() bool {
	for _, candidate := range validPortionSizes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePortionSize converts the raw string to PortionSize; empty defaults to
// the serves-two portion.
func ParsePortionSize(value string) (PortionSize, error) {
	if value == "" {
		return PortionSizeTwo, nil
	}
	for _, candidate := range validPortionSizes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid portion size %q", value)
}
