// Command genmock writes a deterministic sample data directory for the
// analyzer: earthquakes.csv, temperature.csv and exams.csv. The files carry
// the extra columns real exports have (dates, locations, school names) so the
// loader's column selection is exercised. After writing, it runs the domain
// analysis over the generated records and prints the headline figures for
// updating test assertions.
//
// Usage:
//
//	go run ./cmd/genmock -out data
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/nepal-data-analyzer/internal/adapter/filestore"
	"github.com/couchcryptid/nepal-data-analyzer/internal/domain"
	"github.com/olekukonko/tablewriter"
)

type earthquake struct {
	date      string
	location  string
	magnitude float64
	deaths    int
}

type school struct {
	name        string
	district    string
	students    int
	passPercent float64
}

var earthquakes = []earthquake{
	{"1934-01-15", "Dhankuta", 8.0, 8519},
	{"1980-07-29", "Bajhang", 6.5, 103},
	{"1988-08-21", "Udayapur", 6.9, 721},
	{"2011-09-18", "Taplejung", 6.9, 6},
	{"2015-04-25", "Gorkha", 7.8, 8964},
	{"2015-04-26", "Sindhupalchok", 6.7, 0},
	{"2015-05-12", "Dolakha", 7.3, 218},
	{"2022-11-09", "Doti", 5.6, 6},
	{"2023-11-03", "Jajarkot", 5.7, 153},
}

var temperatures = []domain.TemperatureRecord{
	{Month: "Jan", Kathmandu: 10.1, Pokhara: 13.0},
	{Month: "Feb", Kathmandu: 12.4, Pokhara: 15.1},
	{Month: "Mar", Kathmandu: 16.6, Pokhara: 19.4},
	{Month: "Apr", Kathmandu: 19.8, Pokhara: 22.6},
	{Month: "May", Kathmandu: 21.9, Pokhara: 24.5},
	{Month: "Jun", Kathmandu: 23.8, Pokhara: 26.2},
	{Month: "Jul", Kathmandu: 24.1, Pokhara: 26.4},
	{Month: "Aug", Kathmandu: 24.1, Pokhara: 26.1},
	{Month: "Sep", Kathmandu: 22.9, Pokhara: 25.3},
	{Month: "Oct", Kathmandu: 19.4, Pokhara: 21.8},
	{Month: "Nov", Kathmandu: 15.0, Pokhara: 17.5},
	{Month: "Dec", Kathmandu: 11.3, Pokhara: 14.2},
}

var schools = []school{
	{"Shree Bal Vidya Mandir", "Kathmandu", 320, 91.5},
	{"Durbar High School", "Kathmandu", 450, 78.5},
	{"Janata Secondary School", "Kaski", 210, 84.0},
	{"Lakeside Academy", "Kaski", 150, 88.0},
	{"Bharatpur Model School", "Chitwan", 180, 72.2},
	{"Narayani Secondary School", "Chitwan", 240, 69.8},
	{"Patan Secondary School", "Lalitpur", 380, 86.4},
	{"Bhaktapur Community School", "Bhaktapur", 130, 89.7},
	{"Biratnagar Public School", "Morang", 290, 75.1},
	{"Butwal Vidhyapeeth", "Rupandehi", 260, 80.3},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data", "directory to write the sample CSV files to")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}

	files := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{filestore.EarthquakesFile, []string{"date", "year", "location", "magnitude", "deaths"}, earthquakeRows()},
		{filestore.TemperaturesFile, []string{"month", "kathmandu", "pokhara"}, temperatureRows()},
		{filestore.ExamsFile, []string{"school", "district", "students", "pass_percent"}, examRows()},
	}
	for _, f := range files {
		path := filepath.Join(*out, f.name)
		if err := writeCSV(path, f.header, f.rows); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
		log.Printf("wrote %s: %d rows", path, len(f.rows))
	}

	return printStats(*out)
}

func earthquakeRows() [][]string {
	rows := make([][]string, 0, len(earthquakes))
	for _, e := range earthquakes {
		rows = append(rows, []string{
			e.date,
			e.date[:4],
			e.location,
			domain.FormatFloat(e.magnitude),
			strconv.Itoa(e.deaths),
		})
	}
	return rows
}

func temperatureRows() [][]string {
	rows := make([][]string, 0, len(temperatures))
	for _, t := range temperatures {
		rows = append(rows, []string{t.Month, domain.FormatFloat(t.Kathmandu), domain.FormatFloat(t.Pokhara)})
	}
	return rows
}

func examRows() [][]string {
	rows := make([][]string, 0, len(schools))
	for _, s := range schools {
		rows = append(rows, []string{s.name, s.district, strconv.Itoa(s.students), domain.FormatFloat(s.passPercent)})
	}
	return rows
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printStats reloads the written files through the analyzer's loader so the
// printed figures are exactly what a run would report.
func printStats(dir string) error {
	data, err := filestore.NewLoader(dir).LoadAll()
	if err != nil {
		return err
	}

	eq, err := domain.AnalyzeEarthquakes(data.Earthquakes)
	if err != nil {
		return err
	}
	temp, err := domain.AnalyzeTemperature(data.Temperatures)
	if err != nil {
		return err
	}
	exams, err := domain.AnalyzeExams(data.Exams)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"dataset", "figure", "value"})
	table.SetAutoFormatHeaders(false)
	table.AppendBulk([][]string{
		{domain.DatasetEarthquakes, "total", domain.FormatInt(eq.Total)},
		{domain.DatasetEarthquakes, "average magnitude", domain.FormatFixed(eq.AverageMagnitude, domain.MagnitudePlaces)},
		{domain.DatasetEarthquakes, "max magnitude", domain.FormatFloat(eq.MaxMagnitude)},
		{domain.DatasetEarthquakes, "total deaths", domain.FormatInt(eq.TotalDeaths)},
	})
	for _, c := range temp.Cities {
		table.Append([]string{domain.DatasetTemperatures, c.City + " average", domain.FormatFixed(c.Average, domain.TemperaturePlaces)})
		table.Append([]string{domain.DatasetTemperatures, c.City + " max", domain.FormatFixed(c.Max, domain.TemperaturePlaces) + " in " + c.HottestMonth})
	}
	table.AppendBulk([][]string{
		{domain.DatasetExams, "total students", domain.FormatInt(exams.TotalStudents)},
		{domain.DatasetExams, "average pass", domain.FormatFixed(exams.AveragePass, domain.PercentPlaces)},
		{domain.DatasetExams, "best district", exams.BestDistrict + " " + domain.FormatFixed(exams.BestPassPercent, domain.PercentPlaces)},
	})
	table.Render()
	return nil
}
