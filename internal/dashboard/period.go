package dashboard

import (
	"time"

	"github.com/lestahub/lestahub-backend/pkg/enums"
)

// resolvePeriodRange maps a reporting period onto a concrete [start, end]
// window anchored at now. Open periods (current month, year) end at now;
// closed periods end at the final instant of their last day.
func resolvePeriodRange(period enums.DashboardPeriod, now time.Time) (time.Time, time.Time, enums.DashboardPeriod) {
	switch period {
	case enums.DashboardPeriodLastMonth:
		start := startOfMonth(now).AddDate(0, -1, 0)
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
		return start, end, period
	case enums.DashboardPeriodQuarter:
		start := startOfQuarter(now)
		end := start.AddDate(0, 3, 0).Add(-time.Nanosecond)
		return start, end, period
	case enums.DashboardPeriodYear:
		return startOfYear(now), now, period
	default:
		return startOfMonth(now), now, enums.DashboardPeriodCurrentMonth
	}
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfQuarter(t time.Time) time.Time {
	quarterMonth := time.Month((int(t.Month())-1)/3*3 + 1)
	return time.Date(t.Year(), quarterMonth, 1, 0, 0, 0, 0, t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}
