package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/mash-protocol/mash-serial/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByLayer     map[log.Layer]int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	ErrorsByKind      map[log.ErrorKind]int
	Channels          map[string]*ChannelStats
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// ChannelStats holds statistics for one channel lifetime.
type ChannelStats struct {
	FirstSeen  time.Time
	LastSeen   time.Time
	Target     string
	Events     int
	FramesIn   int
	FramesOut  int
	PayloadIn  int
	PayloadOut int
	Errors     int
}

// Collect reads every event in the file and aggregates them.
func Collect(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByLayer:     make(map[log.Layer]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		ErrorsByKind:      make(map[log.ErrorKind]int),
		Channels:          make(map[string]*ChannelStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}
	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++
	if event.Category != log.CategoryState {
		s.EventsByDirection[event.Direction]++
	}

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	ch, ok := s.Channels[event.ChannelID]
	if !ok {
		ch = &ChannelStats{
			FirstSeen: event.Timestamp,
			LastSeen:  event.Timestamp,
		}
		s.Channels[event.ChannelID] = ch
	}
	ch.Events++
	if event.Timestamp.After(ch.LastSeen) {
		ch.LastSeen = event.Timestamp
	}
	if event.Target != "" && ch.Target == "" {
		ch.Target = event.Target
	}

	switch {
	case event.Frame != nil && event.Direction == log.DirectionIn:
		ch.FramesIn++
		ch.PayloadIn += event.Frame.PayloadSize
	case event.Frame != nil:
		ch.FramesOut++
		ch.PayloadOut += event.Frame.PayloadSize
	case event.Error != nil:
		ch.Errors++
		s.ErrorsByKind[event.Error.Kind]++
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := Collect(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Serial Link Capture Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerChannel, log.LayerFraming} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryFrame, log.CategoryState, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Channels: %d\n", len(stats.Channels))
	if len(stats.Channels) > 0 {
		type chanInfo struct {
			id    string
			stats *ChannelStats
		}
		chans := make([]chanInfo, 0, len(stats.Channels))
		for id, cs := range stats.Channels {
			chans = append(chans, chanInfo{id, cs})
		}
		sort.Slice(chans, func(i, j int) bool {
			return chans[i].stats.FirstSeen.Before(chans[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, c := range chans {
			duration := c.stats.LastSeen.Sub(c.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenID(c.id), c.stats.Events, duration)
			if c.stats.Target != "" {
				fmt.Fprintf(w, "           Target: %s\n", c.stats.Target)
			}
			fmt.Fprintf(w, "           Frames: %d in (%d bytes), %d out (%d bytes)\n",
				c.stats.FramesIn, c.stats.PayloadIn, c.stats.FramesOut, c.stats.PayloadOut)
			if c.stats.Errors > 0 {
				fmt.Fprintf(w, "           Errors: %d\n", c.stats.Errors)
			}
		}
	}

	if len(stats.ErrorsByKind) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Errors by Kind:")
		for _, kind := range []log.ErrorKind{log.ErrorKindChecksum, log.ErrorKindOverflow, log.ErrorKindWrite, log.ErrorKindRead, log.ErrorKindFatal} {
			if count := stats.ErrorsByKind[kind]; count > 0 {
				fmt.Fprintf(w, "  %-12s %d\n", kind.String()+":", count)
			}
		}
	}
}
