package datebands

import "fmt"

// month lengths and start-of-month day-of-year tables, common and leap years
var (
	monthLengths     = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	monthLengthsLeap = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	monthStarts      = [12]int{1, 32, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
	monthStartsLeap  = [12]int{1, 32, 61, 92, 122, 153, 183, 214, 245, 275, 306, 336}
)

// IsLeapYear applies the Gregorian leap-year rule
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DayOfYear converts a calendar date to its 1-based day of year. The month
// (1-12) and day are assumed to have been validated by the caller.
func DayOfYear(year, month, day int) int {
	doy := 0
	for i := 0; i < month-1; i++ {
		doy += monthLengths[i]
	}
	doy += day
	if IsLeapYear(year) && month > 2 {
		doy++
	}
	return doy
}

// MonthDayFromDOY converts a 1-based day of year back to its calendar month
// and day
func MonthDayFromDOY(year, doy int) (month, day int, err error) {
	if doy <= 0 || doy > 366 {
		return 0, 0, fmt.Errorf("%w: DOY %d outside [1,366]", ErrInvalidInput, doy)
	}

	starts := &monthStarts
	lengths := &monthLengths
	if IsLeapYear(year) {
		starts = &monthStartsLeap
		lengths = &monthLengthsLeap
	}

	for i := 1; i < 12; i++ {
		if starts[i] > doy {
			month = i
			day = doy - starts[i-1] + 1
			break
		}
	}
	// No later month start exceeded the DOY, so it falls in December
	if month == 0 {
		month = 12
		day = doy - starts[11] + 1
	}

	// Re-validate against the per-month day counts. This guards the tables
	// above against an off-by-one; it must hold for every DOY in range.
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: computed month %d from DOY %d", ErrInvalidInput, month, doy)
	}
	if day < 1 || day > lengths[month-1] {
		return 0, 0, fmt.Errorf("%w: computed day %d-%d-%d from DOY %d", ErrInvalidInput, year, month, day, doy)
	}
	return month, day, nil
}
