// Implements optional per-event trace recording for debugging and offline
// analysis of a run's dispatch sequence.

package sim

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// TraceRecorder writes one CSV row per dispatched event and keeps the
// dispatch times in memory for a post-run summary. Attach with
// Simulator.SetTrace; Close flushes the file.
type TraceRecorder struct {
	file   *os.File
	writer *csv.Writer
	times  []float64
}

// NewTraceRecorder creates a trace file at path and writes the CSV header.
func NewTraceRecorder(path string) (*TraceRecorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{"clock", "kind"}); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing trace header: %w", err)
	}
	return &TraceRecorder{file: f, writer: w}, nil
}

// Record appends one dispatched event to the trace.
func (t *TraceRecorder) Record(clock float64, kind EventKind) {
	t.times = append(t.times, clock)
	t.writer.Write([]string{
		strconv.FormatFloat(clock, 'f', 6, 64),
		kind.String(),
	})
}

// Events returns the number of recorded dispatches.
func (t *TraceRecorder) Events() int {
	return len(t.times)
}

// MeanGap returns the mean inter-dispatch gap of the recorded trace, or 0
// when fewer than two events were recorded.
func (t *TraceRecorder) MeanGap() float64 {
	if len(t.times) < 2 {
		return 0
	}
	gaps := make([]float64, len(t.times)-1)
	for i := 1; i < len(t.times); i++ {
		gaps[i-1] = t.times[i] - t.times[i-1]
	}
	return stat.Mean(gaps, nil)
}

// Close flushes buffered rows and closes the trace file.
func (t *TraceRecorder) Close() error {
	t.writer.Flush()
	if err := t.writer.Error(); err != nil {
		t.file.Close()
		return fmt.Errorf("flushing trace: %w", err)
	}
	return t.file.Close()
}
