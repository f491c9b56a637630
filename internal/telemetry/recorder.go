package telemetry

import (
	"errors"
	"log/slog"

	"predprey/internal/sims/predprey"
)

// Recorder feeds generation records into a summary window and, when an
// output manager is attached, into CSV.
type Recorder struct {
	out    *OutputManager
	window *Window
	log    bool

	last Summary
	seen int
}

// NewRecorder returns a recorder summarizing every window generations. out
// may be nil. With logSummaries set each summary is logged at info level.
func NewRecorder(out *OutputManager, window int, logSummaries bool) *Recorder {
	return &Recorder{out: out, window: NewWindow(window), log: logSummaries}
}

// Observe records one generation.
func (r *Recorder) Observe(rec Record) error {
	r.seen++
	if err := r.out.WriteRecord(rec); err != nil {
		return err
	}
	if s, ok := r.window.Add(rec); ok {
		return r.emit(s)
	}
	return nil
}

// Flush summarizes a partial window so the next record starts a new one.
// Call it when the sim restarts from generation zero.
func (r *Recorder) Flush() error {
	if s, ok := r.window.Flush(); ok {
		return r.emit(s)
	}
	return nil
}

// Close summarizes a partial window and closes the output.
func (r *Recorder) Close() error {
	return errors.Join(r.Flush(), r.out.Close())
}

// Last returns the most recent summary.
func (r *Recorder) Last() Summary { return r.last }

// Generations reports how many records were observed.
func (r *Recorder) Generations() int { return r.seen }

func (r *Recorder) emit(s Summary) error {
	r.last = s
	if r.log {
		slog.Info("window", "summary", s)
	}
	return r.out.WriteSummary(s)
}

// FromStats converts a world's generation stats into a record.
func FromStats(s predprey.Stats) Record {
	return Record{
		Generation:     s.Generation,
		Prey:           s.Prey,
		Predators:      s.Predators,
		PreyBirths:     s.PreyBirths,
		PredatorBirths: s.PredatorBirths,
		PreyDeaths:     s.PreyDeaths,
		PredatorDeaths: s.PredatorDeaths,
	}
}
