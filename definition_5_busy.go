package meetingfinder

import (
	"slices"
)

// BusyRanges returns, sorted and merged, the parts of the day in which
// at least one of the attendees is busy.
// Touching blocks are merged, the result is the complement of the free runs.
func BusyRanges(events []Event, attendees Attendees) []TimeRange {
	busy := make([]TimeRange, 0, len(events))

	for _, event := range events {
		if !event.HasAttendeeIn(attendees) {
			continue
		}

		clipped := TimeRange{
			start: max(event.when.start, StartOfDay),
			end:   min(event.when.end, MinutesInDay),
		}

		if clipped.Duration() <= 0 {
			continue
		}

		busy = append(busy, clipped)
	}

	slices.SortFunc(
		busy,
		func(a, b TimeRange) int {
			return a.Compare(b)
		},
	)

	result := make([]TimeRange, 0, len(busy))

	for _, current := range busy {
		if len(result) == 0 {
			result = append(result, current)

			continue
		}

		last := &result[len(result)-1]

		if current.start > last.end {
			result = append(result, current)

			continue
		}

		last.end = max(last.end, current.end)
	}

	return result
}

type ResponseDaySummary struct {
	Free []TimeRange
	Busy []TimeRange

	FreeMinutes int
	BusyMinutes int
}

// DaySummary reports free and busy parts of the day for the attendees,
// free runs of any length are included.
func (q FindMeetingQuery) DaySummary(events []Event, attendees Attendees) *ResponseDaySummary {
	result := ResponseDaySummary{
		Free: q.freeRanges(events, attendees, 1),
		Busy: BusyRanges(events, attendees),
	}

	for _, free := range result.Free {
		result.FreeMinutes = result.FreeMinutes + free.Duration()
	}

	result.BusyMinutes = MinutesInDay - result.FreeMinutes

	return &result
}
