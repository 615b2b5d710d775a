package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/cwbudde/rasterbench/internal/bench"
	"github.com/cwbudde/rasterbench/internal/raster"
)

// Event is one line of a JSON-lines stream.
type Event struct {
	// Kind is "trial" or "strategy".
	Kind string `json:"event"`

	Strategy  raster.Name `json:"strategy"`
	Timestamp time.Time   `json:"timestamp"`

	// Trial and ElapsedNs are set for trial events. ElapsedNs is always
	// encoded so a zero-length trial keeps its field.
	Trial     int   `json:"trial,omitempty"`
	ElapsedNs int64 `json:"elapsedNs"`

	// Result is set for strategy events.
	Result *bench.Result `json:"result,omitempty"`
}

// JSONLines streams one Event per trial and per finished strategy. It is
// safe for concurrent use. Write errors are kept and returned by Flush.
type JSONLines struct {
	mu     sync.Mutex
	writer *bufio.Writer
	err    error
	now    func() time.Time
}

// NewJSONLines returns a JSONLines writing to w.
func NewJSONLines(w io.Writer) *JSONLines {
	return &JSONLines{
		writer: bufio.NewWriterSize(w, 64*1024),
		now:    time.Now,
	}
}

// TrialDone records a trial event.
func (j *JSONLines) TrialDone(name raster.Name, trial int, elapsed time.Duration) {
	j.write(Event{
		Kind:      "trial",
		Strategy:  name,
		Trial:     trial,
		ElapsedNs: elapsed.Nanoseconds(),
	})
}

// StrategyDone records a strategy event.
func (j *JSONLines) StrategyDone(r bench.Result) {
	j.write(Event{Kind: "strategy", Strategy: r.Strategy, Result: &r})
}

func (j *JSONLines) write(e Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.err != nil {
		return
	}
	e.Timestamp = j.now()

	data, err := json.Marshal(e)
	if err != nil {
		j.err = fmt.Errorf("failed to marshal event: %w", err)
		return
	}
	if _, err := j.writer.Write(data); err != nil {
		j.err = fmt.Errorf("failed to write event: %w", err)
		return
	}
	if err := j.writer.WriteByte('\n'); err != nil {
		j.err = fmt.Errorf("failed to write newline: %w", err)
	}
}

// Flush writes buffered events and returns the first error seen.
func (j *JSONLines) Flush() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.err != nil {
		return j.err
	}
	if err := j.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush events: %w", err)
	}
	return nil
}

// ReadEvents decodes a JSON-lines stream written by JSONLines.
func ReadEvents(r io.Reader) ([]Event, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var events []Event
	for scanner.Scan() {
		var e Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event: %w", err)
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan events: %w", err)
	}
	return events, nil
}

// WriteJSON writes the final report as an indented JSON document.
func WriteJSON(w io.Writer, rep *bench.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
