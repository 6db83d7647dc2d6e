package timeparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// rule pairs a recognizer with a calculator and a describer. Rules are tried
// in the order they were compiled; the first one whose recognizer matches and
// whose calculator succeeds wins.
type rule struct {
	name     string
	re       *regexp.Regexp
	calc     func(m []string, now time.Time) (time.Time, error)
	describe func(m []string) string
}

// errDeferred is returned by the clock-time calculator when the match is
// prefixed by the "tomorrow" keyword, so the explicit next-day rule further
// down the list handles it instead.
var errDeferred = errors.New("handled by a later rule")

func compileRules(loc Locale) []rule {
	start := `(?:^|\s)`
	in := regexp.QuoteMeta(loc.in)
	at := regexp.QuoteMeta(loc.at)
	tomorrow := regexp.QuoteMeta(loc.tomorrow)
	units := alternation(concat(loc.minuteWords, loc.hourWords, loc.dayWords))
	hours := alternation(loc.hourWords)
	minutes := alternation(loc.minuteWords)
	oClock := alternation(loc.oClockWords)
	oneHour := alternation(loc.oneHourWords)
	halfHour := alternation(loc.halfHourWords)
	months := alternation(loc.monthNames())

	return []rule{
		{
			// "in 10 minutes", "in 2 hours", "in 3 days"
			name: "relative",
			re:   regexp.MustCompile(start + in + `\s+(\d+)\s+(` + units + `)`),
			calc: func(m []string, now time.Time) (time.Time, error) {
				unit, ok := loc.unitDuration(m[2])
				if !ok {
					return time.Time{}, fmt.Errorf("unknown unit %q", m[2])
				}
				d, err := offsetDuration(m[1], unit)
				if err != nil {
					return time.Time{}, err
				}
				return now.Add(d), nil
			},
			describe: func(m []string) string {
				return loc.in + " " + m[1] + " " + m[2]
			},
		},
		{
			// "at 9:30"; rolls to the next day when already past
			name: "clock_time",
			re:   regexp.MustCompile(start + `(?:(` + tomorrow + `)\s+)?` + at + `\s+(\d{1,2}):(\d{2})`),
			calc: func(m []string, now time.Time) (time.Time, error) {
				if m[1] != "" {
					return time.Time{}, errDeferred
				}
				t, err := clockInstant(now, m[2], m[3])
				if err != nil {
					return time.Time{}, err
				}
				if !t.After(now) {
					t = t.AddDate(0, 0, 1)
				}
				return t, nil
			},
			describe: func(m []string) string {
				return loc.at + " " + m[2] + ":" + m[3]
			},
		},
		{
			// "at 9 o'clock"; same rollover as clock_time
			name: "hour_only",
			re:   regexp.MustCompile(start + at + `\s+(\d{1,2})\s+(?:` + oClock + `)`),
			calc: func(m []string, now time.Time) (time.Time, error) {
				t, err := clockInstant(now, m[1], "0")
				if err != nil {
					return time.Time{}, err
				}
				if !t.After(now) {
					t = t.AddDate(0, 0, 1)
				}
				return t, nil
			},
			describe: func(m []string) string {
				return loc.at + " " + m[1] + ":00"
			},
		},
		{
			// "tomorrow at 9:00"; already in the future, no rollover
			name: "tomorrow_clock_time",
			re:   regexp.MustCompile(start + tomorrow + `\s+` + at + `\s+(\d{1,2}):(\d{2})`),
			calc: func(m []string, now time.Time) (time.Time, error) {
				t, err := clockInstant(now.AddDate(0, 0, 1), m[1], m[2])
				if err != nil {
					return time.Time{}, err
				}
				return t, nil
			},
			describe: func(m []string) string {
				return loc.tomorrow + " " + loc.at + " " + m[1] + ":" + m[2]
			},
		},
		{
			// "in an hour", "in 2 hours"
			name: "relative_hours",
			re:   regexp.MustCompile(start + in + `\s+((?:` + oneHour + `)|(\d+)\s+(?:` + hours + `))`),
			calc: func(m []string, now time.Time) (time.Time, error) {
				if m[2] == "" {
					return now.Add(time.Hour), nil
				}
				d, err := offsetDuration(m[2], time.Hour)
				if err != nil {
					return time.Time{}, err
				}
				return now.Add(d), nil
			},
			describe: func(m []string) string {
				return loc.in + " " + m[1]
			},
		},
		{
			// "in half an hour", "in 30 minutes"
			name: "half_hour",
			re:   regexp.MustCompile(start + in + `\s+((?:` + halfHour + `)|30\s+(?:` + minutes + `))`),
			calc: func(m []string, now time.Time) (time.Time, error) {
				return now.Add(30 * time.Minute), nil
			},
			describe: func(m []string) string {
				return loc.in + " " + m[1]
			},
		},
		{
			// "23 august"; past dates roll to next year. Anchored to the end
			// of the note so trailing text falls to the event variant below.
			name: "month_date",
			re:   regexp.MustCompile(`(\d{1,2})\s+(` + months + `)\s*$`),
			calc: func(m []string, now time.Time) (time.Time, error) {
				day, _ := strconv.Atoi(m[1])
				return calendarInstant(now, int(loc.months[m[2]]), day)
			},
			describe: func(m []string) string {
				return m[1] + " " + m[2]
			},
		},
		{
			// "23 august birthday"
			name: "month_date_event",
			re:   regexp.MustCompile(`(\d{1,2})\s+(` + months + `)\s+(.+)`),
			calc: func(m []string, now time.Time) (time.Time, error) {
				day, _ := strconv.Atoi(m[1])
				return calendarInstant(now, int(loc.months[m[2]]), day)
			},
			describe: func(m []string) string {
				return m[1] + " " + m[2] + " " + m[3]
			},
		},
		{
			// "23.08"
			name: "dotted_date",
			re:   regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\s*$`),
			calc: func(m []string, now time.Time) (time.Time, error) {
				day, _ := strconv.Atoi(m[1])
				month, _ := strconv.Atoi(m[2])
				return calendarInstant(now, month, day)
			},
			describe: func(m []string) string {
				return m[1] + "." + m[2]
			},
		},
		{
			// "23.08 birthday"
			name: "dotted_date_event",
			re:   regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\s+(.+)`),
			calc: func(m []string, now time.Time) (time.Time, error) {
				day, _ := strconv.Atoi(m[1])
				month, _ := strconv.Atoi(m[2])
				return calendarInstant(now, month, day)
			},
			describe: func(m []string) string {
				return m[1] + "." + m[2] + " " + m[3]
			},
		},
	}
}

// offsetDuration converts a matched count into a forward duration. Counts
// that do not parse, are non-positive, or overflow the duration arithmetic
// are rejected so the rule falls through instead of producing a wrapped,
// past-pointing instant.
func offsetDuration(s string, unit time.Duration) (time.Duration, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("offset %q out of range", s)
	}
	d := time.Duration(n) * unit
	if d/unit != time.Duration(n) {
		return 0, fmt.Errorf("offset %q out of range", s)
	}
	return d, nil
}

// clockInstant builds today's date at the given wall-clock time.
func clockInstant(now time.Time, hourStr, minuteStr string) (time.Time, error) {
	hour, _ := strconv.Atoi(hourStr)
	minute, _ := strconv.Atoi(minuteStr)
	if hour > 23 {
		return time.Time{}, fmt.Errorf("hour %d out of range", hour)
	}
	if minute > 59 {
		return time.Time{}, fmt.Errorf("minute %d out of range", minute)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), nil
}

// calendarInstant builds midnight of the given day and month in the current
// year, rolling to the next year when the date has already passed. A rolled
// date is validated again so Feb 29 outside a leap year is rejected.
func calendarInstant(now time.Time, month, day int) (time.Time, error) {
	t, err := dateOf(now.Year(), month, day, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	if !t.After(now) {
		return dateOf(now.Year()+1, month, day, now.Location())
	}
	return t, nil
}

func dateOf(year, month, day int, loc *time.Location) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range", month)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("no such date: %02d.%02d.%d", day, month, year)
	}
	return t, nil
}

func concat(lists ...[]string) []string {
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}
	return all
}
