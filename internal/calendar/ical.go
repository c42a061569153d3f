package calendar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/TudorHulban/meetingfinder"
	"github.com/emersion/go-ical"
	"go.uber.org/zap"
)

const (
	_PropTransparency  = "TRANSP"
	_StatusCancelled   = "CANCELLED"
	_TransparencyFree  = "TRANSPARENT"
	_PrefixCalendarURI = "mailto:"
)

type loadStats struct {
	components  int
	events      int
	included    int
	cancelled   int
	transparent int
	missingTime int
	outsideDay  int
	overridden  int
}

// LoadICal decodes all calendars in r and returns the busy events touching the day.
// Recurring events contribute every occurrence overlapping the day.
func LoadICal(r io.Reader, params *ParamsLoad) ([]meetingfinder.Event, error) {
	decoder := ical.NewDecoder(r)
	dayStart, dayEnd := params.Window()
	location := params.Day.Location()

	var (
		result []meetingfinder.Event
		stats  loadStats
	)

	for {
		cal, errDecode := decoder.Decode()
		if errors.Is(errDecode, io.EOF) {
			break
		}
		if errDecode != nil {
			return nil,
				fmt.Errorf("failed to decode calendar: %w", errDecode)
		}

		overrides := collectOverrides(cal.Children, location)

		for _, component := range cal.Children {
			stats.components++

			if component.Name != ical.CompEvent {
				continue
			}

			stats.events++

			events, errEvent := eventsFromComponent(
				component,
				&paramsComponent{
					DayStart:   dayStart,
					DayEnd:     dayEnd,
					Location:   location,
					Owner:      params.Owner,
					Overridden: overridesOf(component, overrides),
				},
				&stats,
			)
			if errEvent != nil {
				params.logger().Warn(
					"skipping event",
					zap.String("summary", propValue(component, ical.PropSummary)),
					zap.Error(errEvent),
				)

				stats.missingTime++

				continue
			}

			result = append(result, events...)
		}
	}

	params.logger().Debug(
		"calendar loaded",
		zap.String("owner", params.Owner),
		zap.Time("day", dayStart),
		zap.Int("components", stats.components),
		zap.Int("events", stats.events),
		zap.Int("included", stats.included),
		zap.Int("cancelled", stats.cancelled),
		zap.Int("transparent", stats.transparent),
		zap.Int("missing time", stats.missingTime),
		zap.Int("outside day", stats.outsideDay),
		zap.Int("overridden", stats.overridden),
	)

	return result,
		nil
}

func LoadICalFile(path string, params *ParamsLoad) ([]meetingfinder.Event, error) {
	f, errOpen := os.Open(path)
	if errOpen != nil {
		return nil,
			fmt.Errorf("failed to open calendar %s: %w", path, errOpen)
	}
	defer f.Close()

	return LoadICal(f, params)
}

type paramsComponent struct {
	DayStart time.Time
	DayEnd   time.Time
	Location *time.Location
	Owner    string

	// Overridden holds the original starts, as Unix seconds, of the occurrences
	// replaced by a RECURRENCE-ID event of the same UID.
	Overridden map[int64]struct{}
}

// collectOverrides indexes, per UID, the RECURRENCE-ID instants of the
// events replacing single occurrences of a recurring event.
func collectOverrides(components []*ical.Component, location *time.Location) map[string]map[int64]struct{} {
	result := make(map[string]map[int64]struct{})

	for _, component := range components {
		if component.Name != ical.CompEvent {
			continue
		}

		prop := component.Props.Get(ical.PropRecurrenceID)
		if prop == nil {
			continue
		}

		original, errParse := prop.DateTime(location)
		if errParse != nil {
			continue
		}

		uid := propValue(component, ical.PropUID)

		if _, exists := result[uid]; !exists {
			result[uid] = make(map[int64]struct{})
		}

		result[uid][original.Unix()] = struct{}{}
	}

	return result
}

// overridesOf returns the replaced occurrences of a recurring master event,
// nil for the overriding events themselves.
func overridesOf(component *ical.Component, overrides map[string]map[int64]struct{}) map[int64]struct{} {
	if component.Props.Get(ical.PropRecurrenceID) != nil {
		return nil
	}

	return overrides[propValue(component, ical.PropUID)]
}

func eventsFromComponent(component *ical.Component, params *paramsComponent, stats *loadStats) ([]meetingfinder.Event, error) {
	if strings.EqualFold(propValue(component, ical.PropStatus), _StatusCancelled) {
		stats.cancelled++

		return nil, nil
	}

	if strings.EqualFold(propValue(component, _PropTransparency), _TransparencyFree) {
		stats.transparent++

		return nil, nil
	}

	start, end, errTimes := componentTimes(component, params.Location)
	if errTimes != nil {
		return nil, errTimes
	}

	attendees := componentAttendees(component, params.Owner)
	label := newLabel(propValue(component, ical.PropSummary))
	length := end.Sub(start)

	starts := []time.Time{start}

	if component.Props.Get(ical.PropRecurrenceRule) != nil {
		set, errRecurrence := component.RecurrenceSet(params.Location)
		if errRecurrence != nil {
			return nil,
				fmt.Errorf("invalid recurrence: %w", errRecurrence)
		}

		if set != nil {
			starts = set.Between(
				params.DayStart.Add(-length),
				params.DayEnd,
				true,
			)
		}
	}

	var result []meetingfinder.Event

	for _, occurrenceStart := range starts {
		if _, replaced := params.Overridden[occurrenceStart.Unix()]; replaced {
			stats.overridden++

			continue
		}

		occurrenceEnd := occurrenceStart.Add(length)

		if !occurrenceEnd.After(params.DayStart) || !occurrenceStart.Before(params.DayEnd) {
			stats.outsideDay++

			continue
		}

		event, errCr := meetingfinder.NewEvent(
			&meetingfinder.ParamsNewEvent{
				Label:     label,
				When:      toDayRange(params.DayStart, occurrenceStart, occurrenceEnd),
				Attendees: attendees,
			},
		)
		if errCr != nil {
			return nil, errCr
		}

		stats.included++

		result = append(result, *event)
	}

	return result,
		nil
}

// componentTimes resolves the event bounds, DTEND falls back to DURATION
// and then to a whole day for date only starts.
func componentTimes(component *ical.Component, location *time.Location) (time.Time, time.Time, error) {
	startProp := component.Props.Get(ical.PropDateTimeStart)
	if startProp == nil {
		return time.Time{},
			time.Time{},
			errors.New("missing DTSTART")
	}

	start, errStart := startProp.DateTime(location)
	if errStart != nil {
		return time.Time{},
			time.Time{},
			fmt.Errorf("invalid DTSTART: %w", errStart)
	}

	if endProp := component.Props.Get(ical.PropDateTimeEnd); endProp != nil {
		end, errEnd := endProp.DateTime(location)
		if errEnd != nil {
			return time.Time{},
				time.Time{},
				fmt.Errorf("invalid DTEND: %w", errEnd)
		}

		if end.Before(start) {
			return time.Time{},
				time.Time{},
				errors.New("DTEND before DTSTART")
		}

		return start, end, nil
	}

	if durationProp := component.Props.Get(ical.PropDuration); durationProp != nil {
		duration, errDuration := durationProp.Duration()
		if errDuration != nil {
			return time.Time{},
				time.Time{},
				fmt.Errorf("invalid DURATION: %w", errDuration)
		}

		return start, start.Add(duration), nil
	}

	if startProp.ValueType() == ical.ValueDate {
		return start, start.AddDate(0, 0, 1), nil
	}

	return start, start, nil
}

func componentAttendees(component *ical.Component, owner string) []string {
	unique := make(map[string]struct{})

	if attendee := NormalizeAttendee(owner); len(attendee) > 0 {
		unique[attendee] = struct{}{}
	}

	for _, name := range []string{ical.PropAttendee, ical.PropOrganizer} {
		for _, prop := range component.Props[name] {
			if attendee := NormalizeAttendee(prop.Value); len(attendee) > 0 {
				unique[attendee] = struct{}{}
			}
		}
	}

	return meetingfinder.Attendees(unique).Sorted()
}

// NormalizeAttendee strips the mailto scheme and lower cases the address,
// callers pass attendee names through it to match calendar attendees.
func NormalizeAttendee(value string) string {
	trimmed := strings.TrimSpace(value)

	if len(trimmed) >= len(_PrefixCalendarURI) && strings.EqualFold(trimmed[:len(_PrefixCalendarURI)], _PrefixCalendarURI) {
		trimmed = trimmed[len(_PrefixCalendarURI):]
	}

	return strings.ToLower(trimmed)
}

// NormalizeAttendees applies NormalizeAttendee to every name.
func NormalizeAttendees(names []string) []string {
	result := make([]string, 0, len(names))

	for _, name := range names {
		result = append(result, NormalizeAttendee(name))
	}

	return result
}

func propValue(component *ical.Component, name string) string {
	if prop := component.Props.Get(name); prop != nil {
		return prop.Value
	}

	return ""
}
