package enums

import "fmt"

// CounterpartyRelationship describes how the counterparty relates to bloggers.
type CounterpartyRelationship string

const (
	CounterpartyRelationshipDirect     CounterpartyRelationship = "DIRECT"
	CounterpartyRelationshipAgency     CounterpartyRelationship = "AGENCY"
	CounterpartyRelationshipCPANetwork CounterpartyRelationship = "CPA_NETWORK"
)

var validCounterpartyRelationships = []CounterpartyRelationship{
	CounterpartyRelationshipDirect,
	CounterpartyRelationshipAgency,
	CounterpartyRelationshipCPANetwork,
}

// String implements fmt.Stringer.
func (c CounterpartyRelationship) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CounterpartyRelationship.
func (c CounterpartyRelationship) IsValid() bool {
	for _, candidate := range validCounterpartyRelationships {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCounterpartyRelationship converts raw input into a CounterpartyRelationship.
func ParseCounterpartyRelationship(value string) (CounterpartyRelationship, error) {
	for _, candidate := range validCounterpartyRelationships {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid counterparty relationship %q", value)
}
