package deepl

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrackerAt(t *testing.T, dir string, clock time.Time) *UsageTracker {
	t.Helper()
	tr, err := NewUsageTracker(filepath.Join(dir, "usage.json"))
	require.NoError(t, err)
	tr.now = func() time.Time { return clock }
	tr.data.CurrentMonth = clock.Format("2006-01")
	return tr
}

func TestUsageTracker_FreshFile(t *testing.T) {
	tr := newTrackerAt(t, t.TempDir(), time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	assert.True(t, tr.CanTranslate(100))
	u := tr.Usage()
	assert.Equal(t, 0, u.MonthCharacters)
	assert.Equal(t, MonthlyCharacterLimit, u.RemainingChars)
	assert.Equal(t, DailyRequestLimit, u.RemainingRequests)
}

func TestUsageTracker_RecordAccumulates(t *testing.T) {
	tr := newTrackerAt(t, t.TempDir(), time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	tr.Record(120)
	tr.Record(80)

	u := tr.Usage()
	assert.Equal(t, 200, u.DayCharacters)
	assert.Equal(t, 2, u.DayRequests)
	assert.Equal(t, 200, u.MonthCharacters)
	assert.Equal(t, MonthlyCharacterLimit-200, u.RemainingChars)
}

func TestUsageTracker_MonthlyCharacterLimit(t *testing.T) {
	tr := newTrackerAt(t, t.TempDir(), time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	tr.data.Monthly.Characters = MonthlyCharacterLimit - 10

	assert.True(t, tr.CanTranslate(10))
	assert.False(t, tr.CanTranslate(11))
}

func TestUsageTracker_DailyRequestLimit(t *testing.T) {
	clock := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tr := newTrackerAt(t, t.TempDir(), clock)
	tr.data.Daily[clock.Format("2006-01-02")] = dayUsage{Requests: DailyRequestLimit}

	assert.False(t, tr.CanTranslate(1))
}

func TestUsageTracker_DailyRollover(t *testing.T) {
	day1 := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	tr := newTrackerAt(t, t.TempDir(), day1)
	tr.data.Daily[day1.Format("2006-01-02")] = dayUsage{Requests: DailyRequestLimit, Characters: 500}
	tr.data.Monthly.Characters = 500

	assert.False(t, tr.CanTranslate(1))

	// The next day frees the request allowance but not the monthly sum.
	tr.now = func() time.Time { return day1.Add(2 * time.Hour) }
	assert.True(t, tr.CanTranslate(1))
	u := tr.Usage()
	assert.Equal(t, 0, u.DayRequests)
	assert.Equal(t, 500, u.MonthCharacters)
}

func TestUsageTracker_MonthlyRollover(t *testing.T) {
	march := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	tr := newTrackerAt(t, t.TempDir(), march)
	tr.data.Monthly.Characters = MonthlyCharacterLimit

	assert.False(t, tr.CanTranslate(1))

	tr.now = func() time.Time { return march.AddDate(0, 0, 1) }
	assert.True(t, tr.CanTranslate(1))
	assert.Equal(t, 0, tr.Usage().MonthCharacters)
}

func TestUsageTracker_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	clock := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	first := newTrackerAt(t, dir, clock)
	first.Record(250)

	second := newTrackerAt(t, dir, clock)
	u := second.Usage()
	assert.Equal(t, 250, u.MonthCharacters)
	assert.Equal(t, 1, u.DayRequests)
}
