package cache

import "time"

// Convenience TTL literals for decoration time, sized the way people reason
// about cache lifetimes. Month is a flat 30 days and Year a flat 365 days;
// no calendar arithmetic.
//
// Forever is for entries that should outlive any realistic deployment. It
// is a large finite duration rather than the maximum one, so now+Forever
// never overflows into the past.
const (
	Second  = time.Second
	Minute  = time.Minute
	Hour    = time.Hour
	Day     = 24 * Hour
	Week    = 7 * Day
	Month   = 30 * Day
	Year    = 365 * Day
	Forever = 100 * Year
)
