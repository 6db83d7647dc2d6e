package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is 2025-03-10 09:30:00 local in all tests below.
var testNow = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

func TestExtractRelativeOffset(t *testing.T) {
	p := New(English())

	res, ok := p.Extract("need to meet a friend in 10 minutes", testNow)
	require.True(t, ok)
	assert.Equal(t, testNow.Add(10*time.Minute), res.DueAt)
	assert.Equal(t, "in 10 minutes", res.Description)

	res, ok = p.Extract("call back in 2 hours", testNow)
	require.True(t, ok)
	assert.Equal(t, testNow.Add(2*time.Hour), res.DueAt)

	res, ok = p.Extract("renew the passport in 3 days", testNow)
	require.True(t, ok)
	assert.Equal(t, testNow.Add(72*time.Hour), res.DueAt)
}

func TestExtractClockTimeRollsOver(t *testing.T) {
	p := New(English())

	// 9:00 has already passed at 9:30, so it means tomorrow 9:00.
	res, ok := p.Extract("standup at 9:00", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC), res.DueAt)
	assert.Equal(t, "at 9:00", res.Description)

	// 18:45 is still ahead today.
	res, ok = p.Extract("dinner at 18:45", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 10, 18, 45, 0, 0, time.UTC), res.DueAt)
}

func TestExtractHourOnly(t *testing.T) {
	p := New(English())

	res, ok := p.Extract("gym at 7 o'clock", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 11, 7, 0, 0, 0, time.UTC), res.DueAt)
	assert.Equal(t, "at 7:00", res.Description)

	res, ok = p.Extract("call at 11 o'clock", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 10, 11, 0, 0, 0, time.UTC), res.DueAt)
}

func TestExtractTomorrowAlwaysTomorrow(t *testing.T) {
	p := New(English())
	want := time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC)

	// After today's 9:00.
	res, ok := p.Extract("tomorrow at 9:00 team meeting", testNow)
	require.True(t, ok)
	assert.Equal(t, want, res.DueAt)
	assert.Equal(t, "tomorrow at 9:00", res.Description)

	// Before today's 9:00 it still means tomorrow, not today.
	early := time.Date(2025, time.March, 10, 7, 0, 0, 0, time.UTC)
	res, ok = p.Extract("tomorrow at 9:00 team meeting", early)
	require.True(t, ok)
	assert.Equal(t, want, res.DueAt)
}

func TestExtractRelativeHourShorthand(t *testing.T) {
	p := New(English())

	res, ok := p.Extract("call mom in an hour", testNow)
	require.True(t, ok)
	assert.Equal(t, testNow.Add(time.Hour), res.DueAt)
	assert.Equal(t, "in an hour", res.Description)
}

func TestExtractHalfHour(t *testing.T) {
	p := New(English())

	res, ok := p.Extract("take the pizza out in half an hour", testNow)
	require.True(t, ok)
	assert.Equal(t, testNow.Add(30*time.Minute), res.DueAt)
	assert.Equal(t, "in half an hour", res.Description)
}

func TestExtractCalendarDate(t *testing.T) {
	p := New(English())

	// March 23 is still ahead on March 10.
	res, ok := p.Extract("23 march", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 23, 0, 0, 0, 0, time.UTC), res.DueAt)

	// February 23 has passed, so next year.
	res, ok = p.Extract("23 february", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.February, 23, 0, 0, 0, 0, time.UTC), res.DueAt)

	// Trailing text lands in the description.
	res, ok = p.Extract("23 august birthday party", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.August, 23, 0, 0, 0, 0, time.UTC), res.DueAt)
	assert.Equal(t, "23 august birthday party", res.Description)
}

func TestExtractDottedDate(t *testing.T) {
	p := New(English())

	res, ok := p.Extract("15.09", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC), res.DueAt)
	assert.Equal(t, "15.09", res.Description)

	res, ok = p.Extract("15.09 dentist appointment", testNow)
	require.True(t, ok)
	assert.Equal(t, "15.09 dentist appointment", res.Description)

	// 10.01 has passed on March 10, rolls a single year forward.
	res, ok = p.Extract("10.01 tax filing", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), res.DueAt)
}

func TestRulePriorityFirstMatchWins(t *testing.T) {
	p := New(English())

	// Matches both the relative rule and the dotted-date rule; the relative
	// rule is listed first and wins.
	res, ok := p.Extract("in 10 minutes prepare for 15.09", testNow)
	require.True(t, ok)
	assert.Equal(t, testNow.Add(10*time.Minute), res.DueAt)
	assert.Equal(t, "in 10 minutes", res.Description)
}

func TestMalformedMatchFallsThrough(t *testing.T) {
	p := New(English())

	// "31 february" matches the month-date rules first but there is no such
	// date; the dotted-date rule must still get its chance.
	res, ok := p.Extract("31 february or rather 15.09", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC), res.DueAt)

	// An out-of-range clock time is skipped, not fatal.
	_, ok = p.Extract("at 25:00", testNow)
	assert.False(t, ok)
}

func TestOversizedOffsetFallsThrough(t *testing.T) {
	p := New(English())

	// The count does not fit in an int; wrapped duration arithmetic must not
	// produce a due time in the past.
	res, ok := p.Extract("in 99999999999999999999 minutes", testNow)
	assert.False(t, ok, "got %v", res.DueAt)

	// A count that parses but overflows the multiplication is rejected too.
	_, ok = p.Extract("in 9999999999999 hours", testNow)
	assert.False(t, ok)

	// A zero offset is meaningless and skipped as well.
	_, ok = p.Extract("in 0 minutes", testNow)
	assert.False(t, ok)

	// The rejected rule still falls through to a later one.
	res, ok = p.Extract("in 99999999999999999999 minutes check on 15.09", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC), res.DueAt)
}

func TestExtractNoMatch(t *testing.T) {
	p := New(English())

	for _, text := range []string{
		"just a plain thought",
		"I wonder why the sky is blue",
		"",
	} {
		_, ok := p.Extract(text, testNow)
		assert.False(t, ok, "expected no match for %q", text)
	}
}

func TestExtractIsCaseInsensitive(t *testing.T) {
	p := New(English())

	res, ok := p.Extract("Meeting Tomorrow At 9:15", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 11, 9, 15, 0, 0, time.UTC), res.DueAt)
}

func TestExtractTruncatesToSeconds(t *testing.T) {
	p := New(English())
	now := testNow.Add(123456789 * time.Nanosecond)

	res, ok := p.Extract("in 5 minutes", now)
	require.True(t, ok)
	assert.Zero(t, res.DueAt.Nanosecond())
}

func TestRussianLocale(t *testing.T) {
	p := New(Russian())

	res, ok := p.Extract("через 10 минут нужно встретить друга", testNow)
	require.True(t, ok)
	assert.Equal(t, testNow.Add(10*time.Minute), res.DueAt)
	assert.Equal(t, "через 10 минут", res.Description)

	res, ok = p.Extract("завтра в 9:00 совещание", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC), res.DueAt)

	res, ok = p.Extract("23 августа день рождения", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.August, 23, 0, 0, 0, 0, time.UTC), res.DueAt)
	assert.Equal(t, "23 августа день рождения", res.Description)
}

func TestHasTimeReference(t *testing.T) {
	p := New(English())

	assert.True(t, p.HasTimeReference("in 10 minutes meet a friend", testNow))
	assert.True(t, p.HasTimeReference("tomorrow at 9:00 meeting", testNow))
	assert.False(t, p.HasTimeReference("a thought with no time in it", testNow))
}
