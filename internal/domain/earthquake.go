package domain

import (
	"fmt"
	"sort"
)

// YearCount is one bar of the earthquakes-by-year chart.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// EarthquakeSummary holds the headline figures for the earthquake dataset.
type EarthquakeSummary struct {
	Total            int         `json:"total"`
	AverageMagnitude float64     `json:"average_magnitude"`
	MaxMagnitude     float64     `json:"max_magnitude"`
	TotalDeaths      int         `json:"total_deaths"`
	ByYear           []YearCount `json:"by_year"`
}

// AnalyzeEarthquakes computes the count, mean and maximum magnitude, total
// deaths and per-year frequency of records. ByYear is sorted by year ascending.
func AnalyzeEarthquakes(records []EarthquakeRecord) (EarthquakeSummary, error) {
	if len(records) == 0 {
		return EarthquakeSummary{}, fmt.Errorf("analyze %s: %w", DatasetEarthquakes, ErrEmptyDataset)
	}

	magnitudes := make([]float64, len(records))
	deaths := 0
	counts := make(map[int]int)
	for i, r := range records {
		magnitudes[i] = r.Magnitude
		deaths += r.Deaths
		counts[r.Year]++
	}

	byYear := make([]YearCount, 0, len(counts))
	for year, n := range counts {
		byYear = append(byYear, YearCount{Year: year, Count: n})
	}
	sort.Slice(byYear, func(i, j int) bool { return byYear[i].Year < byYear[j].Year })

	return EarthquakeSummary{
		Total:            len(records),
		AverageMagnitude: mean(magnitudes),
		MaxMagnitude:     magnitudes[argmax(magnitudes)],
		TotalDeaths:      deaths,
		ByYear:           byYear,
	}, nil
}

// EarthquakeStatsTable lays out the summary as the metric,value statistics table.
func EarthquakeStatsTable(s EarthquakeSummary) Table {
	return Table{
		Header: []string{"metric", "value"},
		Rows: [][]string{
			{"Total Earthquakes", FormatInt(s.Total)},
			{"Average Magnitude", FormatFloat(s.AverageMagnitude)},
			{"Max Magnitude", FormatFloat(s.MaxMagnitude)},
			{"Total Deaths", FormatInt(s.TotalDeaths)},
		},
	}
}
