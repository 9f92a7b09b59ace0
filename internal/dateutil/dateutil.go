// Package dateutil provides date formatting for résumé periods.
package dateutil

import "time"

// isoDate is the input layout accepted by MonthYear.
const isoDate = "2006-01-02"

// monthYear is the display layout for formatted dates.
const monthYear = "01/2006"

// MonthYear reformats an ISO date (YYYY-MM-DD) as MM/YYYY.
// Any value that does not parse as an ISO date is returned unchanged, so
// preformatted periods like "2019 - 2021" survive intact. Empty input
// formats to the empty string.
func MonthYear(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}
	return t.Format(monthYear)
}

// Range formats a start/end date pair as "start – end" (en dash).
// When end is empty, present takes its place ("Current", "Attuale").
func Range(start, end, present string) string {
	formattedEnd := MonthYear(end)
	if formattedEnd == "" {
		formattedEnd = present
	}
	return MonthYear(start) + " – " + formattedEnd
}
