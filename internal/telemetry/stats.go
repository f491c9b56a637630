// Package telemetry collects per-generation population records, summarizes
// them over fixed windows and writes both to CSV.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// Record is one generation's population and turnover.
type Record struct {
	Generation     int `csv:"generation"`
	Prey           int `csv:"prey"`
	Predators      int `csv:"predators"`
	PreyBirths     int `csv:"prey_births"`
	PredatorBirths int `csv:"predator_births"`
	PreyDeaths     int `csv:"prey_deaths"`
	PredatorDeaths int `csv:"predator_deaths"`
}

// Summary aggregates the records of one window.
type Summary struct {
	WindowStart int `csv:"window_start"`
	WindowEnd   int `csv:"window_end"`

	PreyMean float64 `csv:"prey_mean"`
	PreyStd  float64 `csv:"prey_std"`
	PredMean float64 `csv:"pred_mean"`
	PredStd  float64 `csv:"pred_std"`

	// Zero when either population is constant over the window.
	PreyPredCorr float64 `csv:"prey_pred_corr"`

	PreyBirths     int `csv:"prey_births"`
	PredatorBirths int `csv:"predator_births"`
	PreyDeaths     int `csv:"prey_deaths"`
	PredatorDeaths int `csv:"predator_deaths"`
}

// Summarize computes window statistics. It returns the zero Summary for an
// empty slice.
func Summarize(records []Record) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	prey := make([]float64, len(records))
	pred := make([]float64, len(records))
	s := Summary{
		WindowStart: records[0].Generation,
		WindowEnd:   records[len(records)-1].Generation,
	}
	for i, r := range records {
		prey[i] = float64(r.Prey)
		pred[i] = float64(r.Predators)
		s.PreyBirths += r.PreyBirths
		s.PredatorBirths += r.PredatorBirths
		s.PreyDeaths += r.PreyDeaths
		s.PredatorDeaths += r.PredatorDeaths
	}
	if len(records) == 1 {
		s.PreyMean, s.PredMean = prey[0], pred[0]
		return s
	}
	s.PreyMean, s.PreyStd = stat.MeanStdDev(prey, nil)
	s.PredMean, s.PredStd = stat.MeanStdDev(pred, nil)
	if s.PreyStd > 0 && s.PredStd > 0 {
		s.PreyPredCorr = stat.Correlation(prey, pred, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStart),
		slog.Int("window_end", s.WindowEnd),
		slog.Float64("prey_mean", s.PreyMean),
		slog.Float64("prey_std", s.PreyStd),
		slog.Float64("pred_mean", s.PredMean),
		slog.Float64("pred_std", s.PredStd),
		slog.Float64("prey_pred_corr", s.PreyPredCorr),
		slog.Int("prey_births", s.PreyBirths),
		slog.Int("predator_births", s.PredatorBirths),
		slog.Int("prey_deaths", s.PreyDeaths),
		slog.Int("predator_deaths", s.PredatorDeaths),
	)
}

// Window buffers records and emits a Summary every size generations.
type Window struct {
	size    int
	records []Record
}

// NewWindow returns a window of the given size. Sizes below one become one.
func NewWindow(size int) *Window {
	if size < 1 {
		size = 1
	}
	return &Window{size: size, records: make([]Record, 0, size)}
}

// Add appends r. When the window fills it returns the summary and true and
// starts a new window.
func (w *Window) Add(r Record) (Summary, bool) {
	w.records = append(w.records, r)
	if len(w.records) < w.size {
		return Summary{}, false
	}
	s := Summarize(w.records)
	w.records = w.records[:0]
	return s, true
}

// Flush summarizes any partial window.
func (w *Window) Flush() (Summary, bool) {
	if len(w.records) == 0 {
		return Summary{}, false
	}
	s := Summarize(w.records)
	w.records = w.records[:0]
	return s, true
}
