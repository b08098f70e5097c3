package enums

import "fmt"

// PlacementStatus tracks the approval/payment lifecycle of a placement.
type PlacementStatus string

const (
	PlacementStatusPlanned             PlacementStatus = "PLANNED"
	PlacementStatusAgreed              PlacementStatus = "AGREED"
	PlacementStatusDeclined            PlacementStatus = "DECLINED"
	PlacementStatusAwaitingPayment     PlacementStatus = "AWAITING_PAYMENT"
	PlacementStatusAwaitingPublication PlacementStatus = "AWAITING_PUBLICATION"
	PlacementStatusPublished           PlacementStatus = "PUBLISHED"
	PlacementStatusOverdue             PlacementStatus = "OVERDUE"
	PlacementStatusClosed              PlacementStatus = "CLOSED"
)

var validPlacementStatuses = []PlacementStatus{
	PlacementStatusPlanned,
	PlacementStatusAgreed,
	PlacementStatusDeclined,
	PlacementStatusAwaitingPayment,
	PlacementStatusAwaitingPublication,
	PlacementStatusPublished,
	PlacementStatusOverdue,
	PlacementStatusClosed,
}

// String implements fmt.Stringer.
func (p PlacementStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PlacementStatus.
func (p PlacementStatus) IsValid() bool {
	for _, candidate := range validPlacementStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePlacementStatus converts raw input into a PlacementStatus.
func ParsePlacementStatus(value string) (PlacementStatus, error) {
	for _, candidate := range validPlacementStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid placement status %q", value)
}
