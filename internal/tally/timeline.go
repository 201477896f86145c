package tally

import (
	"time"

	"github.com/qepting91/usaidwat/internal/domain"
)

// Timeline buckets a user's comments by day of week and hour of day,
// Monday first. Useful for a heatmap of posting activity.
type Timeline [7][24]int

// NewTimeline builds a timeline from comments using their local time.
func NewTimeline(comments []domain.Comment) Timeline {
	var tl Timeline
	for _, c := range comments {
		local := c.CreatedAt.Local()
		tl[mondayIndex(local.Weekday())][local.Hour()]++
	}
	return tl
}

// Weekdays returns the days of the week in timeline row order.
func Weekdays() [7]time.Weekday {
	return [7]time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
}

// Day returns the hourly buckets for the given weekday.
func (tl Timeline) Day(day time.Weekday) [24]int {
	return tl[mondayIndex(day)]
}

// Max returns the largest bucket value, used to scale heatmaps.
func (tl Timeline) Max() int {
	max := 0
	for _, day := range tl {
		for _, n := range day {
			if n > max {
				max = n
			}
		}
	}
	return max
}

// time.Weekday counts from Sunday; the timeline counts from Monday.
func mondayIndex(day time.Weekday) int {
	return (int(day) + 6) % 7
}
