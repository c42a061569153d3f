package meetingfinder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsMeetingRequest(t *testing.T) {
	t.Run(
		"1. zero duration",
		func(t *testing.T) {
			request, errCr := NewMeetingRequest(
				&ParamsNewMeetingRequest{
					Attendees: []string{personA},
				},
			)
			require.Error(t, errCr)
			require.Nil(t, request)
		},
	)

	t.Run(
		"2. negative duration",
		func(t *testing.T) {
			request, errCr := NewMeetingRequest(
				&ParamsNewMeetingRequest{
					Attendees: []string{personA},
					Duration:  -duration30Minutes,
				},
			)
			require.Error(t, errCr)
			require.Nil(t, request)
		},
	)
}

func TestLifeCycleMeetingRequest(t *testing.T) {
	t.Run(
		"1. duration longer than a day is accepted",
		func(t *testing.T) {
			request, errCr := NewMeetingRequest(
				&ParamsNewMeetingRequest{
					Attendees: []string{personA},
					Duration:  MinutesInDay + 1,
				},
			)
			require.NoError(t, errCr)
			require.Equal(t, MinutesInDay+1, request.Duration())
		},
	)

	t.Run(
		"2. no attendees",
		func(t *testing.T) {
			request, errCr := NewMeetingRequest(
				&ParamsNewMeetingRequest{
					Duration: duration30Minutes,
				},
			)
			require.NoError(t, errCr)
			require.Zero(t, request.Attendees().Len())
		},
	)

	t.Run(
		"3. duplicated attendees collapse",
		func(t *testing.T) {
			request, errCr := NewMeetingRequest(
				&ParamsNewMeetingRequest{
					Attendees: []string{personA, personB, personA},
					Duration:  duration30Minutes,
				},
			)
			require.NoError(t, errCr)
			require.Equal(t, []string{personA, personB}, request.Attendees().Sorted())
		},
	)
}
