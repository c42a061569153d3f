package meetingfinder

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBusyRanges(t *testing.T) {
	tests := []struct {
		name      string
		events    []Event
		attendees Attendees
		expected  []TimeRange
	}{
		{
			name:      "1. no events",
			attendees: NewAttendees(personA),
			expected:  []TimeRange{},
		},
		{
			name: "2. overlapping and touching blocks merge",
			events: []Event{
				newTestEvent("Event 1", FromStartDuration(time0900AM, duration30Minutes), personB),
				newTestEvent("Event 2", FromStartDuration(time0800AM, duration30Minutes), personA),
				newTestEvent("Event 3", FromStartDuration(time0830AM, duration30Minutes), personA),
				newTestEvent("Event 4", FromStartDuration(time1030AM, duration30Minutes), personA),
			},
			attendees: NewAttendees(personA, personB),
			expected: []TimeRange{
				FromStartEnd(time0800AM, time0930AM, false),
				FromStartEnd(time1030AM, time1100AM, false),
			},
		},
		{
			name: "3. other attendees and empty blocks are ignored",
			events: []Event{
				newTestEvent("Event 1", FromStartDuration(time0900AM, duration30Minutes), personC),
				newTestEvent("Event 2", FromStartDuration(time0800AM, 0), personA),
			},
			attendees: NewAttendees(personA),
			expected:  []TimeRange{},
		},
		{
			name: "4. blocks are clipped to the day",
			events: []Event{
				newTestEvent("Event 1", FromStartDuration(StartOfDay, duration1Hour*24+1), personA),
			},
			attendees: NewAttendees(personA),
			expected:  []TimeRange{WholeDay},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				require.Equal(t,
					tt.expected,
					BusyRanges(tt.events, tt.attendees),
				)
			},
		)
	}
}

func TestDaySummaryComplement(t *testing.T) {
	rnd := rand.New(rand.NewPCG(5, 6))
	people := []string{personA, personB, personC}

	var query FindMeetingQuery

	for range 20 {
		events := randomDay(rnd, 1+rnd.IntN(10), people)
		attendees := NewAttendees(people[rnd.IntN(len(people))])

		summary := query.DaySummary(events, attendees)

		var busyMinutes int

		for _, busy := range summary.Busy {
			busyMinutes = busyMinutes + busy.Duration()

			for _, free := range summary.Free {
				require.False(t, busy.Overlaps(free))
			}
		}

		require.Equal(t, summary.BusyMinutes, busyMinutes)
		require.Equal(t, MinutesInDay, summary.FreeMinutes+summary.BusyMinutes)
	}
}
