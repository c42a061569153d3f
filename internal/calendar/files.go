package calendar

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/TudorHulban/meetingfinder"
)

// Source is a calendar file, optionally owned by an attendee.
type Source struct {
	Owner string
	Path  string
}

// ParseSource accepts "path" or "owner=path".
func ParseSource(value string) Source {
	owner, path, found := strings.Cut(value, "=")
	if !found {
		return Source{
			Path: value,
		}
	}

	return Source{
		Owner: NormalizeAttendee(owner),
		Path:  path,
	}
}

// LoadFile picks the decoder from the file extension.
func LoadFile(source Source, params *ParamsLoad) ([]meetingfinder.Event, error) {
	paramsSource := *params
	paramsSource.Owner = source.Owner

	switch strings.ToLower(filepath.Ext(source.Path)) {
	case ".ics", ".ical", ".ifb":
		return LoadICalFile(source.Path, &paramsSource)

	case ".json":
		return LoadJSONFile(source.Path, &paramsSource)

	default:
		return nil,
			fmt.Errorf("unsupported calendar format: %s", source.Path)
	}
}

func LoadFiles(sources []Source, params *ParamsLoad) ([]meetingfinder.Event, error) {
	var result []meetingfinder.Event

	for _, source := range sources {
		events, errLoad := LoadFile(source, params)
		if errLoad != nil {
			return nil, errLoad
		}

		result = append(result, events...)
	}

	return result,
		nil
}
