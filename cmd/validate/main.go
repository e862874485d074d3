// Command validate checks a finished analyzer run end to end: it reloads the
// input datasets, recomputes every statistic, and verifies that the stats
// CSVs, the report and the charts in the output directory match.
//
// Usage:
//
//	go run ./cmd/validate -base .
package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/couchcryptid/nepal-data-analyzer/internal/adapter/filestore"
	"github.com/couchcryptid/nepal-data-analyzer/internal/config"
	"github.com/couchcryptid/nepal-data-analyzer/internal/domain"
	"github.com/fatih/color"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	base := flag.String("base", ".", "analyzer base directory holding data/ and outputs/")
	flag.Parse()

	if code := run(*base); code != 0 {
		os.Exit(code)
	}
}

func run(base string) int {
	dataDir := filepath.Join(base, config.DataDirName)
	outputDir := filepath.Join(base, config.OutputDirName)

	fmt.Println("=== Nepal Data Analyzer Output Validation ===")
	fmt.Println()

	data, err := filestore.NewLoader(dataDir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load datasets: %v\n", err)
		return 1
	}

	results, err := analyze(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: analyze datasets: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateInputs(data),
		validateStatsTables(results, outputDir),
		validateReport(results, outputDir),
		validateCharts(outputDir),
	}

	fmt.Println()
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintfFunc()
	allPassed := true
	for _, p := range phases {
		status := pass("PASS")
		if !p.passed() {
			status = fail("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d earthquakes, %d months, %d schools\n",
		len(data.Earthquakes), len(data.Temperatures), len(data.Exams))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func analyze(data domain.Datasets) (domain.Results, error) {
	eq, err := domain.AnalyzeEarthquakes(data.Earthquakes)
	if err != nil {
		return domain.Results{}, err
	}
	temp, err := domain.AnalyzeTemperature(data.Temperatures)
	if err != nil {
		return domain.Results{}, err
	}
	exams, err := domain.AnalyzeExams(data.Exams)
	if err != nil {
		return domain.Results{}, err
	}
	return domain.Results{Earthquakes: &eq, Temperatures: &temp, Exams: &exams}, nil
}

// ── Phase 1: Input sanity ──
// Flags values the analysis accepts but that point at a bad export.

func validateInputs(data domain.Datasets) *phase {
	p := &phase{name: "Phase 1: Input Sanity (data/*.csv)"}

	for i, e := range data.Earthquakes {
		if e.Magnitude <= 0 || e.Magnitude > 10 {
			p.errorf("earthquake row %d: magnitude %v out of range", i+1, e.Magnitude)
		}
		if e.Deaths < 0 {
			p.errorf("earthquake row %d: negative deaths %d", i+1, e.Deaths)
		}
	}

	if len(data.Temperatures) != 12 {
		p.errorf("temperature: %d months, want 12", len(data.Temperatures))
	}
	seen := make(map[string]bool, len(data.Temperatures))
	for _, t := range data.Temperatures {
		if seen[t.Month] {
			p.errorf("temperature: duplicate month %q", t.Month)
		}
		seen[t.Month] = true
	}

	for i, e := range data.Exams {
		if e.District == "" {
			p.errorf("exam row %d: empty district", i+1)
		}
		if e.Students < 0 {
			p.errorf("exam row %d: negative students %d", i+1, e.Students)
		}
		if e.PassPercent < 0 || e.PassPercent > 100 {
			p.errorf("exam row %d: pass_percent %v out of range", i+1, e.PassPercent)
		}
	}
	return p
}

// ── Phase 2: Statistics tables ──
// Recomputed tables must match the written CSVs cell for cell.

func validateStatsTables(r domain.Results, outputDir string) *phase {
	p := &phase{name: "Phase 2: Statistics Tables (outputs/*.csv)"}

	tables := []struct {
		file  string
		table domain.Table
	}{
		{domain.EarthquakeStatsFile, domain.EarthquakeStatsTable(*r.Earthquakes)},
		{domain.TemperatureStatsFile, domain.TemperatureStatsTable(*r.Temperatures)},
		{domain.ExamStatsFile, domain.ExamStatsTable(*r.Exams)},
	}
	for _, tc := range tables {
		got, err := loadCSV(filepath.Join(outputDir, tc.file))
		if err != nil {
			p.errorf("%s: %v", tc.file, err)
			continue
		}
		want := append([][]string{tc.table.Header}, tc.table.Rows...)
		compareRows(p, tc.file, want, got)
	}
	return p
}

func loadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return csv.NewReader(f).ReadAll()
}

func compareRows(p *phase, file string, want, got [][]string) {
	if len(want) != len(got) {
		p.errorf("%s: %d rows, want %d", file, len(got), len(want))
		return
	}
	for i := range want {
		if !slices.Equal(want[i], got[i]) {
			p.errorf("%s line %d: got %v, want %v", file, i+1, got[i], want[i])
		}
	}
}

// ── Phase 3: Report ──

func validateReport(r domain.Results, outputDir string) *phase {
	p := &phase{name: "Phase 3: Summary Report"}

	got, err := os.ReadFile(filepath.Join(outputDir, domain.ReportFile))
	if err != nil {
		p.errorf("%s: %v", domain.ReportFile, err)
		return p
	}
	if want := domain.BuildReport(r); string(got) != want {
		p.errorf("%s does not match the recomputed report (%d bytes, want %d)", domain.ReportFile, len(got), len(want))
	}
	return p
}

// ── Phase 4: Charts ──

func validateCharts(outputDir string) *phase {
	p := &phase{name: "Phase 4: Charts (outputs/*.png)"}

	for _, name := range []string{domain.EarthquakeChartFile, domain.TemperatureChartFile, domain.ExamChartFile} {
		data, err := os.ReadFile(filepath.Join(outputDir, name))
		if err != nil {
			p.errorf("%s: %v", name, err)
			continue
		}
		if !bytes.HasPrefix(data, pngMagic) {
			p.errorf("%s: not a PNG image", name)
		}
	}
	return p
}
