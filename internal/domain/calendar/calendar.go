// Package calendar builds the date dimension used for analytical joins.
package calendar

import "time"

// Days is the size of the trailing window the dimension covers.
const Days = 365

// Row decomposes one calendar day.
type Row struct {
	DateKey   time.Time
	Day       int
	Month     int
	MonthName string
	Year      int
	Week      int // ISO week number
}

// Dimension returns Days rows counting back from today inclusive, in
// strictly decreasing date order.
func Dimension(today time.Time) []Row {
	rows := make([]Row, 0, Days)
	for i := 0; i < Days; i++ {
		d := today.AddDate(0, 0, -i)
		_, week := d.ISOWeek()
		rows = append(rows, Row{
			DateKey:   d,
			Day:       d.Day(),
			Month:     int(d.Month()),
			MonthName: d.Month().String(),
			Year:      d.Year(),
			Week:      week,
		})
	}
	return rows
}
