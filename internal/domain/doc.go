// Package domain models the three Nepal datasets and the statistics derived
// from them.
//
// # Data Sources
//
// Each run reads three comma-delimited files with a header row from the
// installation's data directory:
//
//	earthquakes.csv  year,magnitude,deaths[,...]     one row per recorded quake
//	temperature.csv  month,kathmandu,pokhara         one row per calendar month (°C)
//	exams.csv        district,students,pass_percent[,...]  one row per school
//
// Columns are matched by header name, so column order is free and any extra
// columns are ignored. Rows are decoded into [EarthquakeRecord],
// [TemperatureRecord] and [ExamRecord] and bundled into [Datasets], which is
// never mutated after loading.
//
// # Aggregation Conventions
//
// Averages are plain arithmetic means over rows. The exam pass rate in
// particular is NOT weighted by student count, both overall and per district.
//
// Ties are resolved deterministically:
//
//	hottest month   first row in input order holding the column maximum
//	best district   first district in byte-wise name order holding the best mean
//
// An analysis over zero rows fails with [ErrEmptyDataset] rather than
// producing NaN averages.
//
// # Rounding
//
// Computed values are stored at full precision. Rounding happens only when a
// value is displayed (see format.go): magnitudes to 2 places, temperatures and
// pass rates to 1 place. Statistics tables carry the unrounded value in its
// shortest round-trip form.
package domain
