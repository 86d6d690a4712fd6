package dsl

import (
	"math"
	"time"

	stdschema "github.com/reoring/stdschema"
)

// maxEpochMillis is the largest distance from the Unix epoch, in milliseconds,
// that a date may represent (±100,000,000 days).
const maxEpochMillis = 8.64e15

// dateLayouts are tried in order for string input. Layouts without a zone are
// interpreted in UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,
}

// Date accepts a time.Time (or non-nil *time.Time), a date string, or a number
// of milliseconds since the Unix epoch, and yields a time.Time. It is the only
// coercing validator.
//
// A time.Time input is invalid iff it is the zero value. Strings and numbers
// that denote 0001-01-01T00:00:00Z are valid and yield that zero value, which
// does not validate again when passed back in as a time.Time.
func Date() stdschema.Schema[time.Time] { return dateSchema{} }

type dateSchema struct{}

func (dateSchema) Standard() stdschema.Props[time.Time] {
	return props(func(v any) stdschema.Outcome[time.Time] {
		switch t := v.(type) {
		case time.Time:
			return checkDate(t, !t.IsZero(), v)
		case *time.Time:
			if t == nil {
				return stdschema.Failure[time.Time](typeIssue("date", v))
			}
			return checkDate(*t, !t.IsZero(), v)
		case string:
			d, ok := parseDateString(t)
			return checkDate(d, ok, v)
		}
		if n, ok := asNumeric(v); ok {
			d, ok := dateFromMillis(n)
			return checkDate(d, ok, v)
		}
		return stdschema.Failure[time.Time](typeIssue("date", v))
	})
}

func checkDate(t time.Time, ok bool, in any) stdschema.Outcome[time.Time] {
	if !ok {
		return stdschema.Failure[time.Time](stdschema.Issue{
			Code:    stdschema.CodeInvalidDate,
			Message: "invalid date",
			Params:  map[string]any{"got": in},
		})
	}
	return stdschema.Success(t)
}

func parseDateString(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateFromMillis truncates toward zero and rejects values outside the
// representable range.
func dateFromMillis(n numeric) (time.Time, bool) {
	if !n.finite() {
		return time.Time{}, false
	}
	ms := math.Trunc(n.f)
	if n.exact {
		ms = float64(n.i)
	}
	if math.Abs(ms) > maxEpochMillis {
		return time.Time{}, false
	}
	if n.exact {
		return time.UnixMilli(n.i).UTC(), true
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}
