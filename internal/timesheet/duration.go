package timesheet

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"colfdesk/internal/shared/apperror"
)

// ErrInvalidDurationFormat rejects user-entered durations that do not parse
// or carry minutes outside 0-59.
var ErrInvalidDurationFormat = apperror.New(
	apperror.CodeInvalidInput,
	"invalid duration format, expected HH:MM, H.MM or plain hours",
	http.StatusBadRequest,
)

var (
	hhmmPattern = regexp.MustCompile(`^(\d{1,3}):(\d{1,2})$`)
	dottedHours = regexp.MustCompile(`^(\d{1,3})\.(\d{1,2})$`)
	plainHours  = regexp.MustCompile(`^(\d{1,3})$`)
)

// ParseDuration converts a user-entered duration string into minutes.
// Accepted shapes: "08:30" -> 510, "1.30" -> 90, "3" -> 180. An empty string
// is a no-op: ok is false and no error is returned. Minute parts above 59
// are rejected, never truncated.
func ParseDuration(value string) (minutes int, ok bool, err error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false, nil
	}

	if m := hhmmPattern.FindStringSubmatch(trimmed); m != nil {
		return combine(m[1], m[2])
	}
	if m := dottedHours.FindStringSubmatch(trimmed); m != nil {
		return combine(m[1], m[2])
	}
	if m := plainHours.FindStringSubmatch(trimmed); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return hours * 60, true, nil
	}

	return 0, false, ErrInvalidDurationFormat
}

func combine(hoursPart, minutesPart string) (int, bool, error) {
	hours, _ := strconv.Atoi(hoursPart)
	mins, _ := strconv.Atoi(minutesPart)
	if mins > 59 {
		return 0, false, ErrInvalidDurationFormat
	}
	return hours*60 + mins, true, nil
}

// FormatMinutes renders minutes as zero-padded HH:MM; negatives render 00:00.
func FormatMinutes(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
