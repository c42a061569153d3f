package meetingfinder

const (
	personA = "Person A"
	personB = "Person B"
	personC = "Person C"

	duration15Minutes = 15
	duration30Minutes = 30
	duration60Minutes = 60
	duration90Minutes = 90
	duration1Hour     = 60
)

var (
	time0800AM = TimeInMinutes(8, 0)
	time0830AM = TimeInMinutes(8, 30)
	time0900AM = TimeInMinutes(9, 0)
	time0930AM = TimeInMinutes(9, 30)
	time1000AM = TimeInMinutes(10, 0)
	time1015AM = TimeInMinutes(10, 15)
	time1030AM = TimeInMinutes(10, 30)
	time1100AM = TimeInMinutes(11, 0)
)

func newTestEvent(label string, when TimeRange, attendees ...string) Event {
	return Event{
		label:     label,
		when:      when,
		attendees: NewAttendees(attendees...),
	}
}

func newTestRequest(duration int, attendees ...string) *MeetingRequest {
	return &MeetingRequest{
		attendees: NewAttendees(attendees...),
		duration:  duration,
	}
}
