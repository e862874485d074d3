// Package filestore reads the input datasets from, and writes statistics
// tables and reports to, the local filesystem.
package filestore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/couchcryptid/nepal-data-analyzer/internal/domain"
)

// Input file names, relative to the data directory.
const (
	EarthquakesFile  = "earthquakes.csv"
	TemperaturesFile = "temperature.csv"
	ExamsFile        = "exams.csv"
)

// Loader decodes the three datasets from CSV files in a directory.
// It implements pipeline.DatasetLoader.
type Loader struct {
	dataDir string
}

// NewLoader creates a Loader reading from dataDir.
func NewLoader(dataDir string) *Loader {
	return &Loader{dataDir: dataDir}
}

// LoadEarthquakes reads earthquakes.csv. Columns other than year, magnitude
// and deaths are ignored.
func (l *Loader) LoadEarthquakes() ([]domain.EarthquakeRecord, error) {
	return loadRecords(l.path(EarthquakesFile), []string{"year", "magnitude", "deaths"},
		func(r row) (domain.EarthquakeRecord, error) {
			year, err := r.int("year")
			if err != nil {
				return domain.EarthquakeRecord{}, err
			}
			magnitude, err := r.float("magnitude")
			if err != nil {
				return domain.EarthquakeRecord{}, err
			}
			deaths, err := r.int("deaths")
			if err != nil {
				return domain.EarthquakeRecord{}, err
			}
			return domain.EarthquakeRecord{Year: year, Magnitude: magnitude, Deaths: deaths}, nil
		})
}

// LoadTemperatures reads temperature.csv.
func (l *Loader) LoadTemperatures() ([]domain.TemperatureRecord, error) {
	return loadRecords(l.path(TemperaturesFile), []string{"month", "kathmandu", "pokhara"},
		func(r row) (domain.TemperatureRecord, error) {
			kathmandu, err := r.float("kathmandu")
			if err != nil {
				return domain.TemperatureRecord{}, err
			}
			pokhara, err := r.float("pokhara")
			if err != nil {
				return domain.TemperatureRecord{}, err
			}
			return domain.TemperatureRecord{Month: r.str("month"), Kathmandu: kathmandu, Pokhara: pokhara}, nil
		})
}

// LoadExams reads exams.csv. Columns other than district, students and
// pass_percent are ignored.
func (l *Loader) LoadExams() ([]domain.ExamRecord, error) {
	return loadRecords(l.path(ExamsFile), []string{"district", "students", "pass_percent"},
		func(r row) (domain.ExamRecord, error) {
			students, err := r.int("students")
			if err != nil {
				return domain.ExamRecord{}, err
			}
			pass, err := r.float("pass_percent")
			if err != nil {
				return domain.ExamRecord{}, err
			}
			return domain.ExamRecord{District: r.str("district"), Students: students, PassPercent: pass}, nil
		})
}

// LoadAll reads every dataset, stopping at the first failure.
func (l *Loader) LoadAll() (domain.Datasets, error) {
	var ds domain.Datasets
	var err error
	if ds.Earthquakes, err = l.LoadEarthquakes(); err != nil {
		return domain.Datasets{}, err
	}
	if ds.Temperatures, err = l.LoadTemperatures(); err != nil {
		return domain.Datasets{}, err
	}
	if ds.Exams, err = l.LoadExams(); err != nil {
		return domain.Datasets{}, err
	}
	return ds, nil
}

func (l *Loader) path(name string) string {
	return filepath.Join(l.dataDir, name)
}

// row is one CSV data row with access to its fields by header name.
type row struct {
	file   string
	line   int
	fields []string
	index  map[string]int
}

func (r row) str(col string) string {
	return strings.TrimSpace(r.fields[r.index[col]])
}

func (r row) float(col string) (float64, error) {
	s := r.str(col)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, r.invalid(col, s, "number")
	}
	return v, nil
}

// int accepts whole numbers, including float spellings such as "9000.0"
// that spreadsheet exports produce.
func (r row) int(col string) (int, error) {
	s := r.str(col)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != math.Trunc(v) || math.Abs(v) > 1<<53 {
		return 0, r.invalid(col, s, "integer")
	}
	return int(v), nil
}

func (r row) invalid(col, value, kind string) error {
	return fmt.Errorf("%s line %d: column %q: value %q is not a valid %s: %w",
		r.file, r.line, col, value, kind, domain.ErrSchema)
}

// loadRecords opens path, checks that every required column is present and
// decodes each data row with decode.
func loadRecords[T any](path string, required []string, decode func(row) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", path, domain.ErrFileAccess, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: missing header row: %w", path, domain.ErrSchema)
	}
	if err != nil {
		return nil, readError(path, err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%s: missing required column %q: %w", path, col, domain.ErrSchema)
		}
	}

	var records []T
	for line := 2; ; line++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(path, err)
		}
		rec, err := decode(row{file: path, line: line, fields: fields, index: index})
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// readError classifies a csv.Reader failure: malformed rows are schema
// errors, anything else is an I/O failure.
func readError(path string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%s: %w: %w", path, domain.ErrSchema, err)
	}
	return fmt.Errorf("read %s: %w: %w", path, domain.ErrFileAccess, err)
}
