package data

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/drakos74/phone-probe/internal/phones"
)

// Segment is one phone annotation interval.
type Segment struct {
	Onset  float64
	Offset float64
	Label  string
}

// Interval is a time range on the merged timeline.
type Interval struct {
	Start float64
	End   float64
}

// ReadSegments parses whitespace-delimited (onset, offset, label) rows.
func ReadSegments(path string) ([]Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read segments from %s: %w", path, err)
	}
	defer f.Close()

	segments := make([]Segment, 0)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed segment at %s:%d: expected 3 fields, got %d", path, line, len(fields))
		}
		onset, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed onset at %s:%d: %w", path, line, err)
		}
		offset, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed offset at %s:%d: %w", path, line, err)
		}
		segments = append(segments, Segment{
			Onset:  onset,
			Offset: offset,
			Label:  fields[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read segments from %s: %w", path, err)
	}
	return segments, nil
}

// Support merges the segments carrying a target label into maximal
// non-overlapping intervals, ordered by start time.
func Support(segments []Segment, targets phones.Set) []Interval {
	filtered := make([]Interval, 0, len(segments))
	for _, seg := range segments {
		if targets.Contains(seg.Label) {
			filtered = append(filtered, Interval{Start: seg.Onset, End: seg.Offset})
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Start == filtered[j].Start {
			return filtered[i].End < filtered[j].End
		}
		return filtered[i].Start < filtered[j].Start
	})

	merged := make([]Interval, 0, len(filtered))
	for _, interval := range filtered {
		if len(merged) == 0 {
			merged = append(merged, interval)
			continue
		}
		last := &merged[len(merged)-1]
		// adjacent intervals collapse as well
		if interval.Start <= last.End {
			if interval.End > last.End {
				last.End = interval.End
			}
			continue
		}
		merged = append(merged, interval)
	}
	return merged
}

// FrameTargets marks the frames covered by the timeline intervals.
// Frame i is centered at i*step. The marked range is inclusive of the
// index found for the interval end, so an interval can claim one extra
// frame past its offset.
func FrameTargets(timeline []Interval, frames int, step float64) []int {
	times := make([]float64, frames)
	for i := range times {
		times[i] = float64(i) * step
	}
	targets := make([]int, frames)
	for _, interval := range timeline {
		bi := sort.SearchFloat64s(times, interval.Start)
		ei := sort.SearchFloat64s(times, interval.End)
		for i := bi; i <= ei && i < frames; i++ {
			targets[i] = 1
		}
	}
	return targets
}
