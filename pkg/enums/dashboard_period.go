package enums

// DashboardPeriod selects the reporting window for dashboard summaries.
type DashboardPeriod string

const (
	DashboardPeriodCurrentMonth DashboardPeriod = "current_month"
	DashboardPeriodLastMonth    DashboardPeriod = "last_month"
	DashboardPeriodQuarter      DashboardPeriod = "quarter"
	DashboardPeriodYear         DashboardPeriod = "year"
)

var validDashboardPeriods = []DashboardPeriod{
	DashboardPeriodCurrentMonth,
	DashboardPeriodLastMonth,
	DashboardPeriodQuarter,
	DashboardPeriodYear,
}

// String implements fmt.Stringer.
func (d DashboardPeriod) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DashboardPeriod.
func (d DashboardPeriod) IsValid() bool {
	for _, candidate := range validDashboardPeriods {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDashboardPeriod converts raw input into a DashboardPeriod, defaulting
// unknown values to the current month.
func ParseDashboardPeriod(value string) DashboardPeriod {
	for _, candidate := range validDashboardPeriods {
		if string(candidate) == value {
			return candidate
		}
	}
	return DashboardPeriodCurrentMonth
}
