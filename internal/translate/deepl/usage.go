package deepl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Free-tier limits.
const (
	MonthlyCharacterLimit = 500_000
	DailyRequestLimit     = 1000
)

type dayUsage struct {
	Characters int `json:"characters"`
	Requests   int `json:"requests"`
}

type usageData struct {
	CurrentMonth string              `json:"current_month"` // YYYY-MM
	Daily        map[string]dayUsage `json:"daily_usage"`   // YYYY-MM-DD → usage
	Monthly      dayUsage            `json:"monthly_usage"`
}

// UsageTracker persists character/request counters across runs so the free
// tier is never exceeded. Counters roll over by calendar day and month. It
// implements translate.Budget.
type UsageTracker struct {
	path string
	data usageData
	now  func() time.Time
}

// NewUsageTracker loads (or initializes) the usage file at path.
func NewUsageTracker(path string) (*UsageTracker, error) {
	t := &UsageTracker{path: path, now: time.Now}
	t.data = usageData{Daily: make(map[string]dayUsage)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.resetMonth()
			return t, nil
		}
		return nil, fmt.Errorf("read usage file %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &t.data); err != nil {
		return nil, fmt.Errorf("parse usage file %s: %w", path, err)
	}
	if t.data.Daily == nil {
		t.data.Daily = make(map[string]dayUsage)
	}
	return t, nil
}

func (t *UsageTracker) today() string { return t.now().Format("2006-01-02") }
func (t *UsageTracker) month() string { return t.now().Format("2006-01") }

func (t *UsageTracker) resetMonth() {
	t.data.CurrentMonth = t.month()
	t.data.Monthly = dayUsage{}
}

func (t *UsageTracker) rollover() {
	if t.data.CurrentMonth != t.month() {
		t.resetMonth()
	}
	if _, ok := t.data.Daily[t.today()]; !ok {
		// Keep only the current day; history lives in the monthly sum.
		t.data.Daily = map[string]dayUsage{t.today(): {}}
	}
}

// CanTranslate reports whether a text of the given length fits in the
// remaining daily and monthly allowance.
func (t *UsageTracker) CanTranslate(chars int) bool {
	t.rollover()
	day := t.data.Daily[t.today()]
	if day.Requests >= DailyRequestLimit {
		return false
	}
	if t.data.Monthly.Characters+chars > MonthlyCharacterLimit {
		return false
	}
	return true
}

// Record counts one request of the given length and persists the counters.
func (t *UsageTracker) Record(chars int) {
	t.rollover()
	day := t.data.Daily[t.today()]
	day.Characters += chars
	day.Requests++
	t.data.Daily[t.today()] = day
	t.data.Monthly.Characters += chars
	t.data.Monthly.Requests++
	_ = t.save()
}

// Summary describes the current usage against limits.
type Summary struct {
	DayCharacters     int
	DayRequests       int
	MonthCharacters   int
	MonthRequests     int
	RemainingChars    int
	RemainingRequests int
}

// Usage returns the current counters after applying rollovers.
func (t *UsageTracker) Usage() Summary {
	t.rollover()
	day := t.data.Daily[t.today()]
	return Summary{
		DayCharacters:     day.Characters,
		DayRequests:       day.Requests,
		MonthCharacters:   t.data.Monthly.Characters,
		MonthRequests:     t.data.Monthly.Requests,
		RemainingChars:    MonthlyCharacterLimit - t.data.Monthly.Characters,
		RemainingRequests: DailyRequestLimit - day.Requests,
	}
}

func (t *UsageTracker) save() error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(t.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(t.path, raw, 0o644)
}
