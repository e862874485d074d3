package domain

// Dataset names used in console output, metrics labels and published summaries.
const (
	DatasetEarthquakes  = "earthquakes"
	DatasetTemperatures = "temperature"
	DatasetExams        = "exams"
)

// City names reported for the temperature dataset, in output order.
const (
	CityKathmandu = "Kathmandu"
	CityPokhara   = "Pokhara"
)

// EarthquakeRecord is one row of earthquakes.csv.
type EarthquakeRecord struct {
	Year      int
	Magnitude float64
	Deaths    int
}

// TemperatureRecord is one row of temperature.csv. Month is kept as the raw
// label so charts and reports show it exactly as written.
type TemperatureRecord struct {
	Month     string
	Kathmandu float64
	Pokhara   float64
}

// ExamRecord is one row of exams.csv. Several rows may share a district.
type ExamRecord struct {
	District    string
	Students    int
	PassPercent float64
}

// Datasets bundles everything loaded for a run. Analysis functions receive the
// slice they need explicitly and must not modify it.
type Datasets struct {
	Earthquakes  []EarthquakeRecord
	Temperatures []TemperatureRecord
	Exams        []ExamRecord
}
