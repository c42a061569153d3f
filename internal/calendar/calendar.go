// Package calendar turns stored calendars into the busy events of a single day.
package calendar

import (
	"math"
	"time"

	"github.com/TudorHulban/meetingfinder"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ParamsLoad struct {
	// Day is any instant of the day to cut, its location decides midnight.
	Day time.Time

	// Owner is added as attendee to every event of the calendar.
	Owner string

	Logger *zap.Logger
}

func (p *ParamsLoad) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}

	return p.Logger
}

// Window returns the midnight bounds of the day.
func (p *ParamsLoad) Window() (time.Time, time.Time) {
	year, month, day := p.Day.Date()

	dayStart := time.Date(year, month, day, 0, 0, 0, 0, p.Day.Location())

	return dayStart,
		dayStart.AddDate(0, 0, 1)
}

// toDayRange maps an instant pair to minutes since midnight.
// Starts before midnight are clipped, ends past the day are kept so the
// engine treats the block as busy until the day ends.
func toDayRange(dayStart, start, end time.Time) meetingfinder.TimeRange {
	startMinute := max(
		int(math.Floor(start.Sub(dayStart).Minutes())),
		meetingfinder.StartOfDay,
	)

	endMinute := max(
		int(math.Ceil(end.Sub(dayStart).Minutes())),
		startMinute,
	)

	return meetingfinder.FromStartEnd(startMinute, endMinute, false)
}

func newLabel(summary string) string {
	if len(summary) > 0 {
		return summary
	}

	return "busy-" + uuid.NewString()
}
