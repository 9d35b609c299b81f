package domain

import "time"

const (
	DatetimeLayout = "2006-01-02T15:04:05Z"
	ClockLayout    = "15:04"
	StoreTimeZone  = "Asia/Bangkok"
)

// StoreLocation returns the store's local zone, falling back to a fixed +07:00 offset
func StoreLocation() *time.Location {
	location, err := time.LoadLocation(StoreTimeZone)
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return location
}

// InStoreTime converts t to the store's local zone
func InStoreTime(t time.Time) time.Time {
	return t.In(StoreLocation())
}

// ClockTime formats t as HH:MM in the store's local zone
func ClockTime(t time.Time) string {
	return InStoreTime(t).Format(ClockLayout)
}

// BeginningOfDay returns 00:00:00 of the given date in the store's zone
func BeginningOfDay(date time.Time) time.Time {
	date = InStoreTime(date)
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location())
}
