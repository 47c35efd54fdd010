package utils

import (
	"time"

	"github.com/julianstephens/recoverwise/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// Day formats t as a calendar day in t's own location.
func Day(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// DaysAgo returns the calendar day n days before now, in now's location.
func DaysAgo(now time.Time, n int) string {
	return Day(now.AddDate(0, 0, -n))
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
