package enums

import "fmt"

// PlacementType classifies the kind of sponsored content.
type PlacementType string

const (
	PlacementTypePost         PlacementType = "POST"
	PlacementTypeVideo        PlacementType = "VIDEO"
	PlacementTypeShortForm    PlacementType = "SHORT_FORM"
	PlacementTypeStream       PlacementType = "STREAM"
	PlacementTypeStories      PlacementType = "STORIES"
	PlacementTypeIntegration  PlacementType = "INTEGRATION"
	PlacementTypeAnnouncement PlacementType = "ANNOUNCEMENT"
)

var validPlacementTypes = []PlacementType{
	PlacementTypePost,
	PlacementTypeVideo,
	PlacementTypeShortForm,
	PlacementTypeStream,
	PlacementTypeStories,
	PlacementTypeIntegration,
	PlacementTypeAnnouncement,
}

// String implements fmt.Stringer.
func (p PlacementType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PlacementType.
func (p PlacementType) IsValid() bool {
	for _, candidate := range validPlacementTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePlacementType converts raw input into a PlacementType.
func ParsePlacementType(value string) (PlacementType, error) {
	for _, candidate := range validPlacementTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid placement type %q", value)
}
