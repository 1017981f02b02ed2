package runlog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/katalvlaran/ilstsp/tsp"
)

// CSVHeader is the first line of every log file.
var CSVHeader = []string{"timestamp", "runtime", "iterations", "best-iteration", "trip-distance", "figure"}

// CSVLog appends records to <Dir>/<label>.csv.
type CSVLog struct {
	Dir string

	mu sync.Mutex
}

// NewCSVLog returns a log rooted at dir; the directory is created on first write.
func NewCSVLog(dir string) *CSVLog {
	return &CSVLog{Dir: dir}
}

// Path returns the file that records for label are appended to.
func (l *CSVLog) Path(label string) string {
	name := strings.NewReplacer("/", "-", "\\", "-").Replace(label)
	if name == "" {
		name = "tour"
	}
	return filepath.Join(l.Dir, name+".csv")
}

// Write implements Sink. The header is written when the file is created.
func (l *CSVLog) Write(_ context.Context, rec tsp.RunRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	path := l.Path(rec.Label)

	_, err := os.Stat(path)
	fresh := errors.Is(err, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	if fresh {
		if err := w.Write(CSVHeader); err != nil {
			return fmt.Errorf("writing run log header: %w", err)
		}
	}
	if err := w.Write(csvRow(rec)); err != nil {
		return fmt.Errorf("writing run log: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing run log: %w", err)
	}

	return nil
}

func csvRow(rec tsp.RunRecord) []string {
	return []string{
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.Runtime.String(),
		strconv.Itoa(rec.Iterations),
		strconv.Itoa(rec.BestIteration),
		tsp.FormatDistance(rec.BestDistance),
		rec.FigureName(),
	}
}

// ReadCSV returns the data rows of a log file, header excluded.
func ReadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing run log: %w", err)
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}

	return rows, nil
}
