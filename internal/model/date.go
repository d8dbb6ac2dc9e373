package model

import "fmt"

// Date is the user-chosen calendar date attached to a transaction. It is a
// plain value object: the caller picks year, month and day freely and no
// calendar validation is performed (day 31 of a 30-day month is accepted).
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// IsZero reports whether the date was left unset by the caller.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}
