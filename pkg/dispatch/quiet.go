package dispatch

import (
	"log/slog"
	"time"

	"github.com/sokochat/sokochat/ent"
)

// quietLocation resolves the timezone used for quiet-hours checks: the
// customer's timezone when known, the tenant's otherwise. An unparseable
// zone falls back to the tenant's, then UTC.
func quietLocation(tenant *ent.Tenant, customer *ent.Customer) *time.Location {
	if customer != nil && customer.Timezone != "" {
		if loc, err := time.LoadLocation(customer.Timezone); err == nil {
			return loc
		}
		slog.Warn("invalid customer timezone, falling back to tenant",
			"customer_id", customer.ID, "timezone", customer.Timezone)
	}
	if loc, err := time.LoadLocation(tenant.Timezone); err == nil {
		return loc
	}
	slog.Warn("invalid tenant timezone, falling back to UTC",
		"tenant_id", tenant.ID, "timezone", tenant.Timezone)
	return time.UTC
}

// inQuietWindow reports whether minute (minutes from local midnight) falls
// in [start, end). A window with start > end wraps past midnight; start ==
// end means no quiet hours.
func inQuietWindow(minute, start, end int) bool {
	if start == end {
		return false
	}
	if start < end {
		return minute >= start && minute < end
	}
	return minute >= start || minute < end
}

// quietExit returns the next moment at or after now when the tenant's quiet
// window ends. The second return is false when now is outside the window.
func quietExit(now time.Time, loc *time.Location, start, end int) (time.Time, bool) {
	local := now.In(loc)
	minute := local.Hour()*60 + local.Minute()
	if !inQuietWindow(minute, start, end) {
		return time.Time{}, false
	}

	exit := time.Date(local.Year(), local.Month(), local.Day(), end/60, end%60, 0, 0, loc)
	if !exit.After(local) {
		// Wrapped window, currently in the pre-midnight half.
		exit = exit.Add(24 * time.Hour)
	}
	return exit, true
}
