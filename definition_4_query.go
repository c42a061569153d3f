package meetingfinder

// FindMeetingQuery finds the free windows of a day.
// It holds no per call state, a single value can serve concurrent queries.
type FindMeetingQuery struct {
	// ParallelThreshold is the number of events above which accumulation
	// is split across workers. Zero selects _DefaultParallelThreshold, negative disables.
	ParallelThreshold int

	// Workers caps the accumulation goroutines, zero means GOMAXPROCS.
	Workers int
}

type ResponseQuery struct {
	Ranges []TimeRange

	// OptionalDropped is set when optional attendees were passed
	// but could not be accommodated.
	OptionalDropped bool
}

// Query returns the free windows for the request honoring all optional attendees,
// or, when that leaves no window, the windows for the mandatory attendees only.
func (q FindMeetingQuery) Query(events []Event, request *MeetingRequest, optionalAttendees Attendees) []TimeRange {
	return q.QueryWithDetails(events, request, optionalAttendees).Ranges
}

func (q FindMeetingQuery) QueryWithDetails(events []Event, request *MeetingRequest, optionalAttendees Attendees) *ResponseQuery {
	if optionalAttendees.Len() > 0 {
		ranges := q.freeRanges(
			events,
			request.attendees.Union(optionalAttendees),
			request.duration,
		)

		if len(ranges) > 0 {
			return &ResponseQuery{
				Ranges: ranges,
			}
		}
	}

	return &ResponseQuery{
		Ranges: q.freeRanges(
			events,
			request.attendees,
			request.duration,
		),

		OptionalDropped: optionalAttendees.Len() > 0,
	}
}

// QueryNoOptionalAttendees returns the windows in which all request attendees are free.
func (q FindMeetingQuery) QueryNoOptionalAttendees(events []Event, request *MeetingRequest) []TimeRange {
	return q.freeRanges(
		events,
		request.attendees,
		request.duration,
	)
}

// freeRanges returns the maximal runs of minutes in which no event touching
// attendees is scheduled and which last at least duration minutes.
func (q FindMeetingQuery) freeRanges(events []Event, attendees Attendees, duration int) []TimeRange {
	if duration > WholeDay.Duration() {
		return []TimeRange{}
	}

	return q.accumulate(events, attendees).
		freeRuns(
			max(duration, 1),
		)
}
