package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// ConfigWriter is anything that can snapshot itself as YAML.
type ConfigWriter interface {
	WriteYAML(path string) error
}

// OutputManager writes generation records and window summaries as CSV.
type OutputManager struct {
	dir           string
	recordFile    *os.File
	summaryFile   *os.File
	recordHeader  bool
	summaryHeader bool
}

// NewOutputManager creates the output directory and its CSV files.
// It returns nil when dir is empty (output disabled); every method is a
// no-op on a nil manager.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	f, err := os.Create(filepath.Join(dir, "generations.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating generations.csv: %w", err)
	}
	om.recordFile = f

	f, err = os.Create(filepath.Join(dir, "summaries.csv"))
	if err != nil {
		om.recordFile.Close()
		return nil, fmt.Errorf("creating summaries.csv: %w", err)
	}
	om.summaryFile = f
	return om, nil
}

// WriteConfig saves the effective configuration as config.yaml.
func (om *OutputManager) WriteConfig(cfg ConfigWriter) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteRecord appends a generation record.
func (om *OutputManager) WriteRecord(r Record) error {
	if om == nil {
		return nil
	}
	if err := writeCSV(om.recordFile, []Record{r}, &om.recordHeader); err != nil {
		return fmt.Errorf("writing generation record: %w", err)
	}
	return nil
}

// WriteSummary appends a window summary.
func (om *OutputManager) WriteSummary(s Summary) error {
	if om == nil {
		return nil
	}
	if err := writeCSV(om.summaryFile, []Summary{s}, &om.summaryHeader); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// writeCSV marshals rows, emitting the header only on the first call.
func writeCSV(f *os.File, rows any, headerWritten *bool) error {
	if *headerWritten {
		return gocsv.MarshalWithoutHeaders(rows, f)
	}
	if err := gocsv.Marshal(rows, f); err != nil {
		return err
	}
	*headerWritten = true
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	for _, f := range []*os.File{om.recordFile, om.summaryFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
