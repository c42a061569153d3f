package meetingfinder

import (
	goerrors "github.com/TudorHulban/go-errors"
)

type MeetingRequest struct {
	attendees Attendees
	duration  int
}

type ParamsNewMeetingRequest struct {
	Attendees []string
	Duration  int
}

// IsValid rejects non positive durations.
// Durations longer than a day are valid, such requests simply find no room.
func (params *ParamsNewMeetingRequest) IsValid() error {
	if params.Duration <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewMeetingRequest",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Duration",
			},
		}
	}

	return nil
}

func NewMeetingRequest(params *ParamsNewMeetingRequest) (*MeetingRequest, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &MeetingRequest{
			attendees: NewAttendees(params.Attendees...),
			duration:  params.Duration,
		},
		nil
}

func (r *MeetingRequest) Attendees() Attendees {
	return r.attendees.Union(nil)
}

func (r *MeetingRequest) Duration() int {
	return r.duration
}
