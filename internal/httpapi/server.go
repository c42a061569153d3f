// Package httpapi exposes the availability engine over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/TudorHulban/meetingfinder"
	"github.com/asaskevich/govalidator"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	query  meetingfinder.FindMeetingQuery
	logger *zap.Logger
	router *gin.Engine

	defaultDuration int
	slotStep        int
}

type ParamsNewServer struct {
	Logger       *zap.Logger `valid:"required"`
	AllowOrigins []string    `valid:"required"`

	Query meetingfinder.FindMeetingQuery

	DefaultDuration   int `valid:"required"`
	SlotStep          int `valid:"required"`
	MaxRequestsPerMin int `valid:"required"`
}

func NewServer(params *ParamsNewServer) (*Server, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "HTTP API",
				Caller:      "NewServer",
				Issue:       errValidation,
			}
	}

	result := Server{
		query:  params.Query,
		logger: params.Logger,

		defaultDuration: params.DefaultDuration,
		slotStep:        params.SlotStep,
	}

	router := gin.New()

	router.Use(
		requestIDMiddleware(),
		recoveryMiddleware(params.Logger),
		loggingMiddleware(params.Logger),
		cors.New(
			cors.Config{
				AllowOrigins:  params.AllowOrigins,
				AllowMethods:  []string{"GET", "POST", "OPTIONS"},
				AllowHeaders:  []string{"Origin", "Content-Type", _HeaderRequestID},
				ExposeHeaders: []string{"Content-Length", _HeaderRequestID},
				MaxAge:        12 * time.Hour,
			},
		),
		rateLimitMiddleware(
			newRateLimiterStore(params.MaxRequestsPerMin),
			params.Logger,
		),
	)

	router.GET("/health", result.HandlerHealth)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/availability", result.HandlerAvailability)
		v1.POST("/summary", result.HandlerSummary)
	}

	result.router = router

	return &result,
		nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	chErr := make(chan error, 1)

	go func() {
		s.logger.Info("listening", zap.String("addr", addr))

		chErr <- srv.ListenAndServe()
	}()

	select {
	case errServe := <-chErr:
		if errors.Is(errServe, http.ErrServerClosed) {
			return nil
		}

		return errServe

	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutting down")

		return srv.Shutdown(ctxShutdown)
	}
}
