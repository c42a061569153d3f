package calendar

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/TudorHulban/meetingfinder"
)

// EventDTO is the wire form of a busy event, times as HH:MM, end may be 24:00.
type EventDTO struct {
	Label     string   `json:"label"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Attendees []string `json:"attendees"`
}

// ParseClock converts HH:MM into minutes since midnight, 24:00 included.
func ParseClock(value string) (int, error) {
	hoursText, minutesText, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found {
		return 0,
			goerrors.ErrInvalidInput{
				Caller:     "ParseClock",
				InputName:  "clock",
				InputValue: value,
			}
	}

	hours, errHours := strconv.Atoi(hoursText)
	minutes, errMinutes := strconv.Atoi(minutesText)

	if errHours != nil || errMinutes != nil ||
		hours < 0 || minutes < 0 || minutes > 59 ||
		meetingfinder.TimeInMinutes(hours, minutes) > meetingfinder.MinutesInDay {
		return 0,
			goerrors.ErrInvalidInput{
				Caller:     "ParseClock",
				InputName:  "clock",
				InputValue: value,
			}
	}

	return meetingfinder.TimeInMinutes(hours, minutes),
		nil
}

func (dto *EventDTO) ToEvent() (*meetingfinder.Event, error) {
	start, errStart := ParseClock(dto.Start)
	if errStart != nil {
		return nil,
			fmt.Errorf("event %q start: %w", dto.Label, errStart)
	}

	end, errEnd := ParseClock(dto.End)
	if errEnd != nil {
		return nil,
			fmt.Errorf("event %q end: %w", dto.Label, errEnd)
	}

	return meetingfinder.NewEvent(
		&meetingfinder.ParamsNewEvent{
			Label:     newLabel(dto.Label),
			When:      meetingfinder.FromStartEnd(start, end, false),
			Attendees: NormalizeAttendees(dto.Attendees),
		},
	)
}

func ToEvents(dtos []EventDTO, owner string) ([]meetingfinder.Event, error) {
	result := make([]meetingfinder.Event, 0, len(dtos))

	for _, dto := range dtos {
		if len(owner) > 0 {
			dto.Attendees = append(
				append([]string{}, dto.Attendees...),
				owner,
			)
		}

		event, errConv := dto.ToEvent()
		if errConv != nil {
			return nil, errConv
		}

		result = append(result, *event)
	}

	return result,
		nil
}

// LoadJSON reads an array of EventDTO.
func LoadJSON(r io.Reader, params *ParamsLoad) ([]meetingfinder.Event, error) {
	var dtos []EventDTO

	if errDecode := json.NewDecoder(r).Decode(&dtos); errDecode != nil {
		return nil,
			fmt.Errorf("failed to decode events: %w", errDecode)
	}

	return ToEvents(dtos, params.Owner)
}

func LoadJSONFile(path string, params *ParamsLoad) ([]meetingfinder.Event, error) {
	f, errOpen := os.Open(path)
	if errOpen != nil {
		return nil,
			fmt.Errorf("failed to open events %s: %w", path, errOpen)
	}
	defer f.Close()

	return LoadJSON(f, params)
}
