// ABOUTME: Calendar field extraction for an instant in a zone
// ABOUTME: Padded or bare decimal rendering, with 12-hour mode for hours
package timeformat

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Field names one calendar component of an instant.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
)

// Part extracts one calendar field of instant in the given zone as a decimal
// string. padded selects two-digit rendering (four digits for the year);
// twelveHour applies to the hour field only. An unresolvable zone or an
// unknown field renders as an empty string rather than failing the caller.
func Part(instant time.Time, field Field, zone string, padded, twelveHour bool) string {
	loc, err := Location(zone)
	if err != nil {
		return ""
	}
	t := instant.In(loc)

	var v int
	switch field {
	case FieldYear:
		if padded {
			return fmt.Sprintf("%04d", t.Year())
		}
		return strconv.Itoa(t.Year())
	case FieldMonth:
		v = int(t.Month())
	case FieldDay:
		v = t.Day()
	case FieldHour:
		v = t.Hour()
		if twelveHour {
			v = v % 12
			if v == 0 {
				v = 12
			}
		}
	case FieldMinute:
		v = t.Minute()
	case FieldSecond:
		v = t.Second()
	default:
		return ""
	}

	if padded {
		return fmt.Sprintf("%02d", v)
	}
	return strconv.Itoa(v)
}

// DayPeriod extracts the AM/PM indicator for instant in the given zone,
// upper- or lower-cased per upper. An unresolvable zone renders as an empty
// string.
func DayPeriod(instant time.Time, zone string, upper bool) string {
	loc, err := Location(zone)
	if err != nil {
		return ""
	}

	period := "pm"
	if instant.In(loc).Hour() < 12 {
		period = "am"
	}
	if upper {
		return strings.ToUpper(period)
	}
	return period
}
