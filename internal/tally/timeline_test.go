package tally

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/qepting91/usaidwat/internal/domain"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestNewTimelineBuckets(t *testing.T) {
	comments := []domain.Comment{
		{ID: "c1", CreatedAt: at(t, "2025-06-02 09:15")}, // Monday 9am
		{ID: "c2", CreatedAt: at(t, "2025-06-02 09:45")}, // Monday 9am
		{ID: "c3", CreatedAt: at(t, "2025-06-08 23:30")}, // Sunday 11pm
	}

	tl := NewTimeline(comments)
	assert.Equal(t, 2, tl.Day(time.Monday)[9])
	assert.Equal(t, 1, tl.Day(time.Sunday)[23])
	assert.Equal(t, 0, tl.Day(time.Tuesday)[9])
	assert.Equal(t, 2, tl.Max())
}

func TestEmptyTimeline(t *testing.T) {
	tl := NewTimeline(nil)
	for _, day := range Weekdays() {
		for _, n := range tl.Day(day) {
			assert.Zero(t, n)
		}
	}
	assert.Zero(t, tl.Max())
}

func TestWeekdaysOrderMondayFirst(t *testing.T) {
	days := Weekdays()
	assert.Equal(t, time.Monday, days[0])
	assert.Equal(t, time.Sunday, days[6])
}
