package meetingfinder

import (
	"errors"
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Event is one busy block shared by its attendees.
type Event struct {
	label     string
	when      TimeRange
	attendees Attendees
}

type ParamsNewEvent struct {
	Label     string `valid:"required"`
	Attendees []string

	When TimeRange
}

func (params *ParamsNewEvent) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewEvent",
			Issue:  errValidation,
		}
	}

	if params.When.Start() < StartOfDay {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewEvent",
			Issue: goerrors.ErrNegativeInput{
				InputName: "When",
			},
		}
	}

	// Ends past MinutesInDay are allowed, such events stay busy until the day ends.
	if params.When.Start() > params.When.End() {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewEvent",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "When",
				InputValue: params.When.String(),
				Issue: errors.New(
					"time start greater than time end",
				),
			},
		}
	}

	return nil
}

func NewEvent(params *ParamsNewEvent) (*Event, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &Event{
			label:     params.Label,
			when:      params.When,
			attendees: NewAttendees(params.Attendees...),
		},
		nil
}

func (e Event) Label() string {
	return e.label
}

func (e Event) When() TimeRange {
	return e.when
}

// Attendees returns a copy, the event stays immutable.
func (e Event) Attendees() Attendees {
	return e.attendees.Union(nil)
}

// HasAttendeeIn reports whether at least one of the event attendees is in the passed set.
func (e Event) HasAttendeeIn(attendees Attendees) bool {
	return e.attendees.Intersects(attendees)
}

func (e Event) String() string {
	return fmt.Sprintf(
		"%s %s %s",

		e.label,
		e.when,
		e.attendees,
	)
}
