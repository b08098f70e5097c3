package enums

import "fmt"

// ProductCode identifies the promoted game title.
type ProductCode string

const (
	ProductCodeTanks ProductCode = "TANKS"
	ProductCodeShips ProductCode = "SHIPS"
	ProductCodeBlitz ProductCode = "BLITZ"
)

var validProductCodes = []ProductCode{
	ProductCodeTanks,
	ProductCodeShips,
	ProductCodeBlitz,
}

// String implements fmt.Stringer.
func (p ProductCode) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductCode.
func (p ProductCode) IsValid() bool {
	for _, candidate := range validProductCodes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductCode converts raw input into a ProductCode.
func ParseProductCode(value string) (ProductCode, error) {
	for _, candidate := range validProductCodes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product code %q", value)
}
