package timesheet

import (
	"fmt"
	"net/http"
	"time"

	"colfdesk/internal/shared/apperror"
)

// Dates are calendar-date-only values: stored as Postgres date, carried as
// time.Time at UTC midnight, formatted YYYY-MM-DD. Weekdays derive from the
// UTC date so month boundaries never shift with the server's timezone.
const DateLayout = "2006-01-02"

const monthLayout = "2006-01"

var ErrInvalidMonthFormat = apperror.New(
	apperror.CodeInvalidInput,
	"invalid month format, expected YYYY-MM",
	http.StatusBadRequest,
)

var ErrInvalidDateFormat = apperror.New(
	apperror.CodeInvalidInput,
	"invalid date format, expected YYYY-MM-DD",
	http.StatusBadRequest,
)

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

func ParseMonth(v string) (Month, error) {
	t, err := time.Parse(monthLayout, v)
	if err != nil {
		return Month{}, ErrInvalidMonthFormat
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Days returns the number of calendar days in the month.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date returns the UTC-midnight time for a day of the month (1-based).
func (m Month) Date(day int) time.Time {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
}

// Start and End bound the month as a half-open [Start, End) interval.
func (m Month) Start() time.Time {
	return m.Date(1)
}

func (m Month) End() time.Time {
	return time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// ParseDate parses a YYYY-MM-DD value into a UTC-midnight time.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}
