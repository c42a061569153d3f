package meetingfinder

import (
	"runtime"
	"sync"
)

const _DefaultParallelThreshold = 4096

// dayDelta holds, per minute, the number of busy blocks starting minus those ending.
// The extra slot absorbs ends falling exactly on MinutesInDay.
type dayDelta [MinutesInDay + 1]int

func (d *dayDelta) add(when TimeRange) {
	start := max(when.start, StartOfDay)
	if start >= MinutesInDay {
		return
	}

	d[start]++

	// Ends past the day are dropped, the block stays busy until the day ends.
	if when.end <= MinutesInDay {
		d[when.end]--
	}
}

func (d *dayDelta) accumulate(events []Event, attendees Attendees) {
	for _, event := range events {
		if event.HasAttendeeIn(attendees) {
			d.add(event.when)
		}
	}
}

func (d *dayDelta) merge(other *dayDelta) {
	for minute := range d {
		d[minute] = d[minute] + other[minute]
	}
}

// freeRuns scans the day once, in order, emitting free runs of at least duration minutes.
func (d *dayDelta) freeRuns(duration int) []TimeRange {
	result := make([]TimeRange, 0)

	emit := func(first, last int) {
		if last-first+1 >= duration {
			result = append(
				result,
				FromStartEnd(first, last, true),
			)
		}
	}

	var occupancy int

	runStart := -1

	for minute := StartOfDay; minute <= EndOfDay; minute++ {
		occupancy = occupancy + d[minute]

		if occupancy != 0 {
			if runStart >= 0 {
				emit(runStart, minute-1)

				runStart = -1
			}

			continue
		}

		if runStart < 0 {
			runStart = minute
		}
	}

	if runStart >= 0 {
		emit(runStart, EndOfDay)
	}

	return result
}

// accumulate builds a fresh delta for the call.
// Large inputs are split across workers, each owning its delta, summed at the end.
func (q FindMeetingQuery) accumulate(events []Event, attendees Attendees) *dayDelta {
	result := new(dayDelta)

	threshold := ternary(
		q.ParallelThreshold == 0,
		_DefaultParallelThreshold,
		q.ParallelThreshold,
	)

	workers := ternary(
		q.Workers > 0,
		q.Workers,
		runtime.GOMAXPROCS(0),
	)

	if threshold < 0 || len(events) <= threshold || workers < 2 {
		result.accumulate(events, attendees)

		return result
	}

	batchSize := (len(events) + workers - 1) / workers
	partials := make([]dayDelta, 0, workers)

	for low := 0; low < len(events); low = low + batchSize {
		partials = append(partials, dayDelta{})
	}

	var wg sync.WaitGroup

	for ix := range partials {
		low := ix * batchSize
		high := min(low+batchSize, len(events))

		wg.Add(1)

		go func(partial *dayDelta, batch []Event) {
			defer wg.Done()

			partial.accumulate(batch, attendees)
		}(&partials[ix], events[low:high])
	}

	wg.Wait()

	for ix := range partials {
		result.merge(&partials[ix])
	}

	return result
}
