package timeparse

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Locale carries the keyword tables the pattern rules are built from.
// Swapping the locale changes the words a rule recognizes, never the rule
// order or the date arithmetic.
type Locale struct {
	Name string

	in       string // "in 10 minutes"
	at       string // "at 9:00"
	tomorrow string // "tomorrow at 9:00"

	minuteWords   []string
	hourWords     []string
	dayWords      []string
	oClockWords   []string // hour-only suffix: "9 o'clock"
	oneHourWords  []string // bare-hour phrase: "an hour"
	halfHourWords []string // "half an hour"

	months map[string]time.Month
}

func English() Locale {
	return Locale{
		Name:     "en",
		in:       "in",
		at:       "at",
		tomorrow: "tomorrow",

		minuteWords:   []string{"minutes", "minute", "mins", "min"},
		hourWords:     []string{"hours", "hour", "hrs", "hr"},
		dayWords:      []string{"days", "day"},
		oClockWords:   []string{"o'clock", "oclock"},
		oneHourWords:  []string{"an hour"},
		halfHourWords: []string{"half an hour"},

		months: map[string]time.Month{
			"january": time.January, "february": time.February,
			"march": time.March, "april": time.April, "may": time.May,
			"june": time.June, "july": time.July, "august": time.August,
			"september": time.September, "october": time.October,
			"november": time.November, "december": time.December,
		},
	}
}

func Russian() Locale {
	return Locale{
		Name:     "ru",
		in:       "через",
		at:       "в",
		tomorrow: "завтра",

		minuteWords:   []string{"минуту", "минуты", "минут"},
		hourWords:     []string{"часов", "часа", "час"},
		dayWords:      []string{"дней", "дня", "день"},
		oClockWords:   []string{"часов", "часа", "час"},
		oneHourWords:  []string{"час"},
		halfHourWords: []string{"полчаса"},

		months: map[string]time.Month{
			"января": time.January, "февраля": time.February,
			"марта": time.March, "апреля": time.April, "мая": time.May,
			"июня": time.June, "июля": time.July, "августа": time.August,
			"сентября": time.September, "октября": time.October,
			"ноября": time.November, "декабря": time.December,
		},
	}
}

// unitDuration maps a matched unit word to its duration.
func (l Locale) unitDuration(word string) (time.Duration, bool) {
	switch {
	case contains(l.minuteWords, word):
		return time.Minute, true
	case contains(l.hourWords, word):
		return time.Hour, true
	case contains(l.dayWords, word):
		return 24 * time.Hour, true
	}
	return 0, false
}

func (l Locale) monthNames() []string {
	names := make([]string, 0, len(l.months))
	for name := range l.months {
		names = append(names, name)
	}
	return names
}

func contains(words []string, w string) bool {
	for _, v := range words {
		if v == w {
			return true
		}
	}
	return false
}

// alternation builds a regexp alternation from literal words. Longer words
// come first so "minutes" is captured whole rather than as "minute".
// Internal spaces match any run of whitespace.
func alternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(w), " ", `\s+`)
	}
	return strings.Join(quoted, "|")
}
