package cache

import (
	"testing"
	"time"
)

func TestDurationConstants(t *testing.T) {
	if Day != 24*time.Hour {
		t.Errorf("Day = %v, want 24h", Day)
	}
	if Year != 365*Day {
		t.Errorf("Year = %v, want 365 days", Year)
	}
	if Forever <= Year {
		t.Errorf("Forever = %v, must exceed Year", Forever)
	}

	// now+Forever must stay in the future, or an entry written with it
	// would be expired on arrival.
	now := time.Now()
	expiresAt := now.Add(Forever)
	if !expiresAt.After(now) {
		t.Errorf("now+Forever = %v, not after %v", expiresAt, now)
	}
	if (Entry{ExpiresAt: expiresAt}).Expired(now) {
		t.Error("entry written with Forever must not be expired at write time")
	}
}
