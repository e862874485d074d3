package pipeline

import (
	"strconv"

	"github.com/couchcryptid/nepal-data-analyzer/internal/domain"
)

const (
	kindChart  = "chart"
	kindStats  = "stats"
	kindReport = "report"
)

// load reads the datasets one at a time, printing each count as it arrives.
func (p *Pipeline) load() (domain.Datasets, error) {
	p.console.Println("Loading Nepalese data...")

	earthquakes, err := p.loader.LoadEarthquakes()
	if err != nil {
		return domain.Datasets{}, err
	}
	p.loaded(domain.DatasetEarthquakes, len(earthquakes))
	p.console.Printf("Earthquakes: %d records\n", len(earthquakes))

	temperatures, err := p.loader.LoadTemperatures()
	if err != nil {
		return domain.Datasets{}, err
	}
	p.loaded(domain.DatasetTemperatures, len(temperatures))
	p.console.Printf("Temperature: %d months\n", len(temperatures))

	exams, err := p.loader.LoadExams()
	if err != nil {
		return domain.Datasets{}, err
	}
	p.loaded(domain.DatasetExams, len(exams))
	p.console.Printf("Exams: %d schools\n", len(exams))

	return domain.Datasets{Earthquakes: earthquakes, Temperatures: temperatures, Exams: exams}, nil
}

func (p *Pipeline) loaded(dataset string, n int) {
	p.metrics.RecordsLoaded.WithLabelValues(dataset).Add(float64(n))
	p.logger.Debug("dataset loaded", "dataset", dataset, "records", n)
}

func (p *Pipeline) analyzeEarthquakes(records []domain.EarthquakeRecord) (domain.EarthquakeSummary, error) {
	p.console.Section("EARTHQUAKE ANALYSIS")

	s, err := domain.AnalyzeEarthquakes(records)
	if err != nil {
		return domain.EarthquakeSummary{}, err
	}

	p.console.Printf("Total Earthquakes: %d\n", s.Total)
	p.console.Printf("Average Magnitude: %s\n", domain.FormatFixed(s.AverageMagnitude, domain.MagnitudePlaces))
	p.console.Printf("Maximum Magnitude: %s\n", domain.FormatFloat(s.MaxMagnitude))
	p.console.Printf("Total Deaths: %d\n", s.TotalDeaths)

	rows := make([][]string, len(s.ByYear))
	for i, yc := range s.ByYear {
		rows[i] = []string{strconv.Itoa(yc.Year), strconv.Itoa(yc.Count)}
	}
	p.console.Table([]string{"year", "earthquakes"}, rows)

	chartPath := p.writer.Path(domain.EarthquakeChartFile)
	if err := p.charts.RenderEarthquakes(chartPath, s); err != nil {
		return domain.EarthquakeSummary{}, err
	}
	p.wrote(kindChart, chartPath)

	statsPath, err := p.writer.WriteTable(domain.EarthquakeStatsFile, domain.EarthquakeStatsTable(s))
	if err != nil {
		return domain.EarthquakeSummary{}, err
	}
	p.wrote(kindStats, statsPath)

	p.console.Printf("Chart saved: %s\n", chartPath)
	p.console.Printf("Stats saved: %s\n", statsPath)
	return s, nil
}

func (p *Pipeline) analyzeTemperature(records []domain.TemperatureRecord) (domain.TemperatureSummary, error) {
	p.console.Section("TEMPERATURE ANALYSIS")

	s, err := domain.AnalyzeTemperature(records)
	if err != nil {
		return domain.TemperatureSummary{}, err
	}

	for _, c := range s.Cities {
		p.console.Printf("%s Average: %s°C\n", c.City, domain.FormatFixed(c.Average, domain.TemperaturePlaces))
	}
	for _, c := range s.Cities {
		p.console.Printf("%s Maximum: %s°C in %s\n", c.City, domain.FormatFixed(c.Max, domain.TemperaturePlaces), c.HottestMonth)
	}

	chartPath := p.writer.Path(domain.TemperatureChartFile)
	if err := p.charts.RenderTemperatures(chartPath, records); err != nil {
		return domain.TemperatureSummary{}, err
	}
	p.wrote(kindChart, chartPath)

	statsPath, err := p.writer.WriteTable(domain.TemperatureStatsFile, domain.TemperatureStatsTable(s))
	if err != nil {
		return domain.TemperatureSummary{}, err
	}
	p.wrote(kindStats, statsPath)

	p.console.Printf("Chart saved: %s\n", chartPath)
	p.console.Printf("Stats saved: %s\n", statsPath)
	return s, nil
}

func (p *Pipeline) analyzeExams(records []domain.ExamRecord) (domain.ExamSummary, error) {
	p.console.Section("EXAM ANALYSIS")

	s, err := domain.AnalyzeExams(records)
	if err != nil {
		return domain.ExamSummary{}, err
	}

	p.console.Printf("Total Students: %d\n", s.TotalStudents)
	p.console.Printf("Average Pass Rate: %s%%\n", domain.FormatFixed(s.AveragePass, domain.PercentPlaces))
	p.console.Printf("Best District: %s (%s%%)\n", s.BestDistrict, domain.FormatFixed(s.BestPassPercent, domain.PercentPlaces))

	table := domain.ExamStatsTable(s)
	p.console.Table(table.Header, table.Rows)

	chartPath := p.writer.Path(domain.ExamChartFile)
	if err := p.charts.RenderExams(chartPath, s); err != nil {
		return domain.ExamSummary{}, err
	}
	p.wrote(kindChart, chartPath)

	statsPath, err := p.writer.WriteTable(domain.ExamStatsFile, table)
	if err != nil {
		return domain.ExamSummary{}, err
	}
	p.wrote(kindStats, statsPath)

	p.console.Printf("Chart saved: %s\n", chartPath)
	p.console.Printf("Stats saved: %s\n", statsPath)
	return s, nil
}

func (p *Pipeline) writeReport(results domain.Results) error {
	p.console.Println()
	p.console.Banner("SUMMARY REPORT")

	text := domain.BuildReport(results)
	p.console.Println(text)

	path, err := p.writer.WriteText(domain.ReportFile, text)
	if err != nil {
		return err
	}
	p.wrote(kindReport, path)
	p.report.Store(&text)

	p.console.Printf("\nFull report saved: %s\n", path)
	p.console.Println()
	return nil
}

func (p *Pipeline) wrote(kind, path string) {
	p.metrics.ArtifactsWritten.WithLabelValues(kind).Inc()
	p.logger.Info("artifact written", "kind", kind, "path", path)
}
