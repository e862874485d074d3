package domain

import (
	"strings"
)

// Output artifact names, relative to the output directory.
const (
	EarthquakeChartFile  = "earthquake_chart.png"
	TemperatureChartFile = "temperature_chart.png"
	ExamChartFile        = "exam_chart.png"
	EarthquakeStatsFile  = "earthquake_stats.csv"
	TemperatureStatsFile = "temperature_stats.csv"
	ExamStatsFile        = "exam_stats.csv"
	ReportFile           = "analysis_report.txt"
)

// GeneratedFiles lists the artifacts a complete run produces, in report order.
var GeneratedFiles = []string{
	EarthquakeChartFile,
	TemperatureChartFile,
	ExamChartFile,
	EarthquakeStatsFile,
	TemperatureStatsFile,
	ExamStatsFile,
}

// Rule is the separator line used by the report and the console banners.
var Rule = strings.Repeat("=", 50)

// Results collects the summaries of a run. A nil field means the dataset was
// not analyzed and its report section is left out.
type Results struct {
	Earthquakes  *EarthquakeSummary
	Temperatures *TemperatureSummary
	Exams        *ExamSummary
}

// BuildReport assembles the plain-text summary report from already computed
// results. Lines are joined with "\n" and the text has no trailing newline.
func BuildReport(r Results) string {
	lines := []string{
		"NEPALESE DATA ANALYSIS REPORT",
		"Generated by Simple Nepal Analyzer",
		Rule,
	}

	if eq := r.Earthquakes; eq != nil {
		lines = append(lines,
			"EARTHQUAKE DATA:",
			"- Total earthquakes: "+FormatInt(eq.Total),
			"- Average magnitude: "+FormatFixed(eq.AverageMagnitude, MagnitudePlaces),
			"- Total deaths: "+FormatInt(eq.TotalDeaths),
			"",
		)
	}

	if temp := r.Temperatures; temp != nil {
		lines = append(lines, "TEMPERATURE DATA:")
		for _, c := range temp.Cities {
			lines = append(lines, "- "+c.City+" average: "+FormatFixed(c.Average, TemperaturePlaces)+"°C")
		}
		lines = append(lines, "")
	}

	if ex := r.Exams; ex != nil {
		lines = append(lines,
			"EXAM DATA:",
			"- Total students: "+FormatInt(ex.TotalStudents),
			"- Average pass rate: "+FormatFixed(ex.AveragePass, PercentPlaces)+"%",
			"",
		)
	}

	lines = append(lines, "FILES GENERATED:")
	for _, f := range GeneratedFiles {
		lines = append(lines, "- "+f)
	}
	lines = append(lines, "", "Check the 'outputs' folder!")

	return strings.Join(lines, "\n")
}
