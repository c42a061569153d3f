package httpapi

import (
	"net/http"

	"github.com/TudorHulban/meetingfinder"
	"github.com/TudorHulban/meetingfinder/internal/calendar"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RequestAvailability struct {
	Events            []calendar.EventDTO `json:"events"`
	Attendees         []string            `json:"attendees"`
	OptionalAttendees []string            `json:"optional_attendees"`

	Duration  int  `json:"duration"`
	SlotStep  int  `json:"slot_step"`
	WithSlots bool `json:"with_slots"`
}

type ResponseAvailability struct {
	RequestID       string                    `json:"request_id"`
	Ranges          []meetingfinder.TimeRange `json:"ranges"`
	Slots           []meetingfinder.TimeRange `json:"slots,omitempty"`
	OptionalDropped bool                      `json:"optional_dropped"`
}

type RequestSummary struct {
	Events    []calendar.EventDTO `json:"events"`
	Attendees []string            `json:"attendees"`
}

type ResponseSummary struct {
	RequestID   string                    `json:"request_id"`
	Free        []meetingfinder.TimeRange `json:"free"`
	Busy        []meetingfinder.TimeRange `json:"busy"`
	FreeMinutes int                       `json:"free_minutes"`
	BusyMinutes int                       `json:"busy_minutes"`
}

func (s *Server) HandlerHealth(c *gin.Context) {
	c.JSON(
		http.StatusOK,
		gin.H{"status": "ok"},
	)
}

func (s *Server) badRequest(c *gin.Context, message string, err error) {
	s.logger.Warn(
		message,
		zap.Error(err),
		zap.String("request_id", c.GetString(_KeyRequestID)),
	)

	c.JSON(
		http.StatusBadRequest,
		ErrorResponse{
			Message:   message,
			Details:   err.Error(),
			RequestID: c.GetString(_KeyRequestID),
		},
	)
}

func (s *Server) HandlerAvailability(c *gin.Context) {
	var req RequestAvailability

	if errBind := c.ShouldBindJSON(&req); errBind != nil {
		s.badRequest(c, "Invalid request payload", errBind)

		return
	}

	events, errEvents := calendar.ToEvents(req.Events, "")
	if errEvents != nil {
		s.badRequest(c, "Invalid events", errEvents)

		return
	}

	request, errRequest := meetingfinder.NewMeetingRequest(
		&meetingfinder.ParamsNewMeetingRequest{
			Attendees: calendar.NormalizeAttendees(req.Attendees),
			Duration: ternary(
				req.Duration == 0,
				s.defaultDuration,
				req.Duration,
			),
		},
	)
	if errRequest != nil {
		s.badRequest(c, "Invalid meeting request", errRequest)

		return
	}

	response := s.query.QueryWithDetails(
		events,
		request,
		meetingfinder.NewAttendees(calendar.NormalizeAttendees(req.OptionalAttendees)...),
	)

	result := ResponseAvailability{
		RequestID:       c.GetString(_KeyRequestID),
		Ranges:          response.Ranges,
		OptionalDropped: response.OptionalDropped,
	}

	if req.WithSlots {
		step := ternary(
			req.SlotStep > 0,
			req.SlotStep,
			s.slotStep,
		)

		for _, free := range response.Ranges {
			result.Slots = append(
				result.Slots,
				free.BreakDown(request.Duration(), step)...,
			)
		}
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) HandlerSummary(c *gin.Context) {
	var req RequestSummary

	if errBind := c.ShouldBindJSON(&req); errBind != nil {
		s.badRequest(c, "Invalid request payload", errBind)

		return
	}

	events, errEvents := calendar.ToEvents(req.Events, "")
	if errEvents != nil {
		s.badRequest(c, "Invalid events", errEvents)

		return
	}

	summary := s.query.DaySummary(
		events,
		meetingfinder.NewAttendees(calendar.NormalizeAttendees(req.Attendees)...),
	)

	c.JSON(
		http.StatusOK,
		ResponseSummary{
			RequestID:   c.GetString(_KeyRequestID),
			Free:        summary.Free,
			Busy:        summary.Busy,
			FreeMinutes: summary.FreeMinutes,
			BusyMinutes: summary.BusyMinutes,
		},
	)
}

func ternary[T any](condition bool, value1, value2 T) T {
	if condition {
		return value1
	}

	return value2
}
