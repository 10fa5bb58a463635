package commands

import (
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mash-protocol/mash-serial/pkg/log"
)

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

// jsonEvent is the JSONL rendering of an event, with enums as names.
type jsonEvent struct {
	Timestamp   string                `json:"timestamp"`
	ChannelID   string                `json:"channel_id"`
	Direction   string                `json:"direction"`
	Layer       string                `json:"layer"`
	Category    string                `json:"category"`
	Target      string                `json:"target,omitempty"`
	Frame       *jsonFrame            `json:"frame,omitempty"`
	StateChange *log.StateChangeEvent `json:"state_change,omitempty"`
	Error       *jsonError            `json:"error,omitempty"`
}

type jsonFrame struct {
	PayloadSize int    `json:"payload_size"`
	WireSize    int    `json:"wire_size,omitempty"`
	Data        string `json:"data,omitempty"`
	Truncated   bool   `json:"truncated,omitempty"`
}

type jsonError struct {
	Layer   string `json:"layer"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
	Data    string `json:"data,omitempty"`
}

func toJSON(e log.Event) jsonEvent {
	je := jsonEvent{
		Timestamp:   e.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		ChannelID:   e.ChannelID,
		Direction:   e.Direction.String(),
		Layer:       e.Layer.String(),
		Category:    e.Category.String(),
		Target:      e.Target,
		StateChange: e.StateChange,
	}
	if e.Frame != nil {
		je.Frame = &jsonFrame{
			PayloadSize: e.Frame.PayloadSize,
			WireSize:    e.Frame.WireSize,
			Data:        hex.EncodeToString(e.Frame.Data),
			Truncated:   e.Frame.Truncated,
		}
	}
	if e.Error != nil {
		je.Error = &jsonError{
			Layer:   e.Error.Layer.String(),
			Kind:    e.Error.Kind.String(),
			Message: e.Error.Message,
			Context: e.Error.Context,
			Data:    hex.EncodeToString(e.Error.Data),
		}
	}
	return je
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(toJSON(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "channel_id", "direction", "layer", "category", "target", "type", "size", "detail"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		eventType, size, detail := "unknown", "", ""
		switch {
		case event.Frame != nil:
			eventType = "frame"
			size = strconv.Itoa(event.Frame.PayloadSize)
			detail = hex.EncodeToString(event.Frame.Data)
		case event.StateChange != nil:
			eventType = "state"
			detail = event.StateChange.NewState
		case event.Error != nil:
			eventType = "error"
			detail = event.Error.Kind.String() + ": " + event.Error.Message
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.ChannelID,
			event.Direction.String(),
			event.Layer.String(),
			event.Category.String(),
			event.Target,
			eventType,
			size,
			detail,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
