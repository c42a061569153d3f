package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TudorHulban/meetingfinder"
	"github.com/TudorHulban/meetingfinder/internal/calendar"
	"github.com/TudorHulban/meetingfinder/internal/config"
	"github.com/TudorHulban/meetingfinder/internal/httpapi"
	"github.com/TudorHulban/meetingfinder/internal/logger"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const _LayoutDate = "2006-01-02"

func main() {
	// .env is optional.
	_ = godotenv.Load()

	if errRun := newApp().Run(os.Args); errRun != nil {
		fmt.Fprintln(os.Stderr, "meetfind:", errRun)

		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "meetfind",
		Usage: "Find the free windows of a day in which all attendees can meet.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: "directory holding meetfind.yaml",
			},
		},
		Commands: []*cli.Command{
			queryCommand(),
			serveCommand(),
		},
	}
}

type environment struct {
	cfg    *config.Config
	logger *zap.Logger
}

func setup(c *cli.Context) (*environment, error) {
	var configPaths []string

	if dir := c.String("config-dir"); len(dir) > 0 {
		configPaths = append(configPaths, dir)
	}

	cfg, errCfg := config.LoadConfig(configPaths...)
	if errCfg != nil {
		return nil, errCfg
	}

	l, errLogger := logger.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if errLogger != nil {
		return nil, errLogger
	}

	return &environment{
			cfg:    cfg,
			logger: l,
		},
		nil
}

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "Print the free windows of a day for the given calendars.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "calendar",
				Aliases: []string{"c"},
				Usage:   "calendar file (.ics or .json), optionally as owner=path",
			},
			&cli.StringSliceFlag{
				Name:    "attendee",
				Aliases: []string{"a"},
				Usage:   "mandatory attendee",
			},
			&cli.StringSliceFlag{
				Name:    "optional",
				Aliases: []string{"o"},
				Usage:   "optional attendee, honored only if a window remains",
			},
			&cli.IntFlag{
				Name:    "duration",
				Aliases: []string{"d"},
				Usage:   "meeting length in minutes, defaults to DEFAULT_DURATION",
			},
			&cli.StringFlag{
				Name:  "date",
				Usage: "day to search as YYYY-MM-DD, defaults to today",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "text",
				Usage: "text or json",
			},
			&cli.BoolFlag{
				Name:  "slots",
				Usage: "also list bookable slots inside every window",
			},
			&cli.IntFlag{
				Name:  "step",
				Usage: "minutes between slot starts, defaults to SLOT_STEP",
			},
			&cli.BoolFlag{
				Name:  "busy",
				Usage: "also list the busy blocks of the mandatory attendees",
			},
		},
		Action: func(c *cli.Context) error {
			env, errSetup := setup(c)
			if errSetup != nil {
				return errSetup
			}
			defer env.logger.Sync() //nolint:errcheck

			day, errDay := parseDay(c.String("date"), env.cfg.Location())
			if errDay != nil {
				return errDay
			}

			sources := make([]calendar.Source, 0, len(c.StringSlice("calendar")))
			for _, value := range c.StringSlice("calendar") {
				sources = append(sources, calendar.ParseSource(value))
			}

			events, errLoad := calendar.LoadFiles(
				sources,
				&calendar.ParamsLoad{
					Day:    day,
					Logger: env.logger,
				},
			)
			if errLoad != nil {
				return errLoad
			}

			duration := c.Int("duration")
			if duration == 0 {
				duration = env.cfg.DefaultDuration
			}

			request, errRequest := meetingfinder.NewMeetingRequest(
				&meetingfinder.ParamsNewMeetingRequest{
					Attendees: calendar.NormalizeAttendees(c.StringSlice("attendee")),
					Duration:  duration,
				},
			)
			if errRequest != nil {
				return errRequest
			}

			query := meetingfinder.FindMeetingQuery{
				ParallelThreshold: env.cfg.ParallelThreshold,
			}

			optional := meetingfinder.NewAttendees(calendar.NormalizeAttendees(c.StringSlice("optional"))...)
			response := query.QueryWithDetails(events, request, optional)

			env.logger.Debug(
				"query done",
				zap.Int("events", len(events)),
				zap.Int("windows", len(response.Ranges)),
				zap.Bool("optional dropped", response.OptionalDropped),
			)

			out := report{
				Date:            day.Format(_LayoutDate),
				Attendees:       request.Attendees().Sorted(),
				Optional:        optional.Sorted(),
				Duration:        request.Duration(),
				Ranges:          response.Ranges,
				OptionalDropped: response.OptionalDropped,
			}

			if c.Bool("slots") {
				step := c.Int("step")
				if step <= 0 {
					step = env.cfg.SlotStep
				}

				for _, free := range response.Ranges {
					out.Slots = append(out.Slots, free.BreakDown(request.Duration(), step)...)
				}
			}

			if c.Bool("busy") {
				out.Busy = meetingfinder.BusyRanges(events, request.Attendees())
			}

			return out.write(c.App.Writer, c.String("format"))
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the availability API over HTTP.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "listen port, defaults to APP_PORT",
			},
		},
		Action: func(c *cli.Context) error {
			env, errSetup := setup(c)
			if errSetup != nil {
				return errSetup
			}
			defer env.logger.Sync() //nolint:errcheck

			server, errCr := httpapi.NewServer(
				&httpapi.ParamsNewServer{
					Logger:       env.logger,
					AllowOrigins: env.cfg.AllowOrigins,
					Query: meetingfinder.FindMeetingQuery{
						ParallelThreshold: env.cfg.ParallelThreshold,
					},
					DefaultDuration:   env.cfg.DefaultDuration,
					SlotStep:          env.cfg.SlotStep,
					MaxRequestsPerMin: env.cfg.MaxRequestsPerMin,
				},
			)
			if errCr != nil {
				return errCr
			}

			port := c.String("port")
			if len(port) == 0 {
				port = env.cfg.AppPort
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, ":"+port)
		},
	}
}

func parseDay(value string, location *time.Location) (time.Time, error) {
	if len(value) == 0 {
		return time.Now().In(location), nil
	}

	day, errParse := time.ParseInLocation(_LayoutDate, value, location)
	if errParse != nil {
		return time.Time{},
			fmt.Errorf("invalid date %q: %w", value, errParse)
	}

	return day, nil
}

type report struct {
	Date            string                    `json:"date"`
	Attendees       []string                  `json:"attendees"`
	Optional        []string                  `json:"optional_attendees"`
	Duration        int                       `json:"duration"`
	Ranges          []meetingfinder.TimeRange `json:"ranges"`
	Slots           []meetingfinder.TimeRange `json:"slots,omitempty"`
	Busy            []meetingfinder.TimeRange `json:"busy,omitempty"`
	OptionalDropped bool                      `json:"optional_dropped"`
}

func (r *report) write(w io.Writer, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(r)

	case "text":
		return r.writeText(w)

	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func (r *report) writeText(w io.Writer) error {
	fmt.Fprintf(w,
		"Free windows on %s for %v (%d minutes):\n",
		r.Date,
		r.Attendees,
		r.Duration,
	)

	if len(r.Ranges) == 0 {
		fmt.Fprintln(w, "  none")
	}

	for _, free := range r.Ranges {
		fmt.Fprintf(w, "  %s\n", free)
	}

	if r.OptionalDropped {
		fmt.Fprintf(w, "Optional attendees %v could not be accommodated.\n", r.Optional)
	}

	if len(r.Slots) > 0 {
		fmt.Fprintln(w, "Slots:")

		for _, slot := range r.Slots {
			fmt.Fprintf(w, "  %s\n", slot)
		}
	}

	if len(r.Busy) > 0 {
		fmt.Fprintln(w, "Busy:")

		for _, busy := range r.Busy {
			fmt.Fprintf(w, "  %s\n", busy)
		}
	}

	_, errWrite := fmt.Fprintln(w)

	return errWrite
}
