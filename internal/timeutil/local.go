package timeutil

import (
	"time"
)

// BRT is the shop's local timezone (UTC-3). Commission logs, movements and
// financial entries are dated in local business days, not UTC.
var BRT *time.Location

func init() {
	var err error
	BRT, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// Fallback: fixed zone if tzdata is unavailable
		BRT = time.FixedZone("BRT", -3*60*60)
	}
}

// Now returns the current time in the shop's timezone.
func Now() time.Time {
	return time.Now().In(BRT)
}

// Today returns the current business date as YYYY-MM-DD.
func Today() string {
	return Now().Format(DateLayout)
}

// Common layouts.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)
