package commission

import "time"

// WeekNumber returns the Monday-to-Sunday week of the date's year, counting
// from 1 for the week containing January 1. The count restarts every year, so
// a week spanning New Year is split into two buckets.
func WeekNumber(date time.Time) int {
	jan1 := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
	offset := (int(jan1.Weekday()) + 6) % 7 // Monday = 0
	days := date.YearDay() - 1

	return (days+offset)/7 + 1
}
