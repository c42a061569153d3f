package meetingfinder

import (
	"slices"
	"strings"
)

// Attendees is a set of attendee identifiers.
type Attendees map[string]struct{}

func NewAttendees(names ...string) Attendees {
	result := make(Attendees, len(names))

	for _, name := range names {
		result[name] = struct{}{}
	}

	return result
}

func (a Attendees) Contains(name string) bool {
	_, exists := a[name]

	return exists
}

func (a Attendees) Len() int {
	return len(a)
}

// Union returns a new set, neither operand is modified.
func (a Attendees) Union(other Attendees) Attendees {
	result := make(Attendees, len(a)+len(other))

	for name := range a {
		result[name] = struct{}{}
	}

	for name := range other {
		result[name] = struct{}{}
	}

	return result
}

func (a Attendees) Intersects(other Attendees) bool {
	smaller, larger := a, other
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}

	for name := range smaller {
		if larger.Contains(name) {
			return true
		}
	}

	return false
}

func (a Attendees) Sorted() []string {
	result := make([]string, 0, len(a))

	for name := range a {
		result = append(result, name)
	}

	slices.Sort(result)

	return result
}

func (a Attendees) String() string {
	return "{" + strings.Join(a.Sorted(), ", ") + "}"
}
