package meetingfinder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsEvent(t *testing.T) {
	t.Run(
		"1. empty params",
		func(t *testing.T) {
			event, errCr := NewEvent(
				&ParamsNewEvent{},
			)
			require.Error(t, errCr)
			require.Nil(t, event)
		},
	)

	t.Run(
		"2. negative start",
		func(t *testing.T) {
			event, errCr := NewEvent(
				&ParamsNewEvent{
					Label:     "Event 1",
					When:      FromStartDuration(-10, duration30Minutes),
					Attendees: []string{personA},
				},
			)
			require.Error(t, errCr)
			require.Nil(t, event)
		},
	)

	t.Run(
		"3. inverted range",
		func(t *testing.T) {
			event, errCr := NewEvent(
				&ParamsNewEvent{
					Label:     "Event 1",
					When:      FromStartEnd(time0900AM, time0800AM, false),
					Attendees: []string{personA},
				},
			)
			require.Error(t, errCr)
			require.Nil(t, event)
		},
	)
}

func TestLifeCycleEvent(t *testing.T) {
	attendees := []string{personA, personB}

	event, errCr := NewEvent(
		&ParamsNewEvent{
			Label:     "Event 1",
			When:      FromStartDuration(time0830AM, duration30Minutes),
			Attendees: attendees,
		},
	)
	require.NoError(t, errCr)
	require.NotNil(t, event)

	require.Equal(t, "Event 1", event.Label())
	require.Equal(t, FromStartDuration(time0830AM, duration30Minutes), event.When())
	require.Equal(t, []string{personA, personB}, event.Attendees().Sorted())

	attendees[0] = personC
	require.True(t, event.Attendees().Contains(personA), "event must not share the caller slice")

	copied := event.Attendees()
	delete(copied, personA)
	require.True(t, event.Attendees().Contains(personA), "event must not expose its set")

	require.True(t, event.HasAttendeeIn(NewAttendees(personB, personC)))
	require.False(t, event.HasAttendeeIn(NewAttendees(personC)))
	require.False(t, event.HasAttendeeIn(nil))

	require.Equal(t,
		"Event 1 08:30-09:00 {Person A, Person B}",
		event.String(),
	)
}

func TestLongerThanDayEventIsValid(t *testing.T) {
	event, errCr := NewEvent(
		&ParamsNewEvent{
			Label:     "Event 1",
			When:      FromStartDuration(StartOfDay, duration1Hour*24+1),
			Attendees: []string{personA},
		},
	)
	require.NoError(t, errCr)
	require.Equal(t, MinutesInDay+1, event.When().End())
}

func TestAttendees(t *testing.T) {
	first := NewAttendees(personA, personB, personA)
	second := NewAttendees(personC)

	require.Equal(t, 2, first.Len())

	union := first.Union(second)
	require.Equal(t, []string{personA, personB, personC}, union.Sorted())
	require.Equal(t, 2, first.Len(), "union must not modify operands")

	require.True(t, union.Intersects(second))
	require.False(t, first.Intersects(second))
	require.False(t, first.Intersects(NewAttendees()))

	var empty Attendees

	require.Zero(t, empty.Len())
	require.Equal(t, first.Sorted(), empty.Union(first).Sorted())
	require.Equal(t, "{}", empty.String())
}
