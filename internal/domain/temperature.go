package domain

import "fmt"

// CityTemperature is the yearly profile of one city.
type CityTemperature struct {
	City         string  `json:"city"`
	Average      float64 `json:"average_temp"`
	Max          float64 `json:"max_temp"`
	HottestMonth string  `json:"hottest_month"`
}

// TemperatureSummary holds one CityTemperature per city, Kathmandu first.
type TemperatureSummary struct {
	Cities []CityTemperature `json:"cities"`
}

// City returns the profile for name and whether it exists.
func (s TemperatureSummary) City(name string) (CityTemperature, bool) {
	for _, c := range s.Cities {
		if c.City == name {
			return c, true
		}
	}
	return CityTemperature{}, false
}

// AnalyzeTemperature computes the mean and maximum per city and the month in
// which the maximum first occurs.
func AnalyzeTemperature(records []TemperatureRecord) (TemperatureSummary, error) {
	if len(records) == 0 {
		return TemperatureSummary{}, fmt.Errorf("analyze %s: %w", DatasetTemperatures, ErrEmptyDataset)
	}

	kathmandu := make([]float64, len(records))
	pokhara := make([]float64, len(records))
	for i, r := range records {
		kathmandu[i] = r.Kathmandu
		pokhara[i] = r.Pokhara
	}

	return TemperatureSummary{
		Cities: []CityTemperature{
			cityProfile(CityKathmandu, kathmandu, records),
			cityProfile(CityPokhara, pokhara, records),
		},
	}, nil
}

func cityProfile(city string, values []float64, records []TemperatureRecord) CityTemperature {
	hottest := argmax(values)
	return CityTemperature{
		City:         city,
		Average:      mean(values),
		Max:          values[hottest],
		HottestMonth: records[hottest].Month,
	}
}

// TemperatureStatsTable lays out the summary as the city,average_temp,max_temp table.
func TemperatureStatsTable(s TemperatureSummary) Table {
	rows := make([][]string, 0, len(s.Cities))
	for _, c := range s.Cities {
		rows = append(rows, []string{c.City, FormatFloat(c.Average), FormatFloat(c.Max)})
	}
	return Table{
		Header: []string{"city", "average_temp", "max_temp"},
		Rows:   rows,
	}
}
