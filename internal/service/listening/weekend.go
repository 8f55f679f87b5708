package listening

import "time"

// NextSaturday returns midnight of the first Saturday on or after t's calendar
// day, in t's location. A Saturday returns the same day.
func NextSaturday(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(time.Saturday) - int(day.Weekday()) + 7) % 7
	return day.AddDate(0, 0, offset)
}
