package meetingfinder

import (
	"encoding/json"
	"fmt"
)

const (
	StartOfDay   = 0
	EndOfDay     = 23*60 + 59 // last valid minute index
	MinutesInDay = 24 * 60
)

var WholeDay = TimeRange{
	start: StartOfDay,
	end:   MinutesInDay,
}

// TimeRange is the half-open interval [start, end) of minutes within a day.
// Values are compared structurally, zero value is the empty range at midnight.
type TimeRange struct {
	start int
	end   int
}

func FromStartDuration(start, duration int) TimeRange {
	return TimeRange{
		start: start,
		end:   start + duration,
	}
}

// FromStartEnd with inclusive set treats end as the last occupied minute,
// needed to express ranges reaching EndOfDay.
func FromStartEnd(start, end int, inclusive bool) TimeRange {
	return TimeRange{
		start: start,
		end: ternary(
			inclusive,
			end+1,
			end,
		),
	}
}

func TimeInMinutes(hours, minutes int) int {
	return hours*60 + minutes
}

func (r TimeRange) Start() int {
	return r.start
}

func (r TimeRange) End() int {
	return r.end
}

func (r TimeRange) Duration() int {
	return r.end - r.start
}

func (r TimeRange) Contains(point int) bool {
	return r.start <= point && point < r.end
}

// ContainsRange is false for empty ranges.
func (r TimeRange) ContainsRange(other TimeRange) bool {
	if other.Duration() <= 0 {
		return false
	}

	return r.start <= other.start && other.end <= r.end
}

func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start < other.end && other.start < r.end
}

// Compare orders by start, then by end.
func (r TimeRange) Compare(other TimeRange) int {
	if r.start < other.start {
		return -1
	}

	if r.start > other.start {
		return 1
	}

	if r.end < other.end {
		return -1
	}

	if r.end > other.end {
		return 1
	}

	return 0
}

// BreakDown returns the ranges of exactly duration minutes fitting inside r,
// one every step minutes. A non positive step defaults to duration.
func (r TimeRange) BreakDown(duration, step int) []TimeRange {
	if duration <= 0 || duration > r.Duration() {
		return nil
	}

	if step <= 0 {
		step = duration
	}

	result := make([]TimeRange, 0, (r.Duration()-duration)/step+1)

	for start := r.start; start+duration <= r.end; start = start + step {
		result = append(
			result,
			FromStartDuration(start, duration),
		)
	}

	return result
}

func (r TimeRange) String() string {
	return fmt.Sprintf(
		"%s-%s",

		formatMinute(r.start),
		formatMinute(r.end),
	)
}

type timeRangeJSON struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

func (r TimeRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(
		timeRangeJSON{
			Start: r.start,
			End:   r.end,
			Label: r.String(),
		},
	)
}

func (r *TimeRange) UnmarshalJSON(data []byte) error {
	var raw timeRangeJSON

	if errUnmarshal := json.Unmarshal(data, &raw); errUnmarshal != nil {
		return errUnmarshal
	}

	r.start = raw.Start
	r.end = raw.End

	return nil
}
