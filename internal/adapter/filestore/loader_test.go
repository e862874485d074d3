package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/nepal-data-analyzer/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoader_LoadEarthquakes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, EarthquakesFile,
		"date,year,location,magnitude,deaths\n"+
			"2015-04-25,2015,Gorkha,7.8,9000\n"+
			"2015-05-12,2015,Dolakha,6.8,200.0\n"+
			"2023-11-03,2023,Jajarkot, 5.1 ,0\n")

	records, err := NewLoader(dir).LoadEarthquakes()
	require.NoError(t, err)

	want := []domain.EarthquakeRecord{
		{Year: 2015, Magnitude: 7.8, Deaths: 9000},
		{Year: 2015, Magnitude: 6.8, Deaths: 200},
		{Year: 2023, Magnitude: 5.1, Deaths: 0},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_LoadTemperatures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, TemperaturesFile,
		"\ufeffmonth,kathmandu,pokhara\n"+
			"Jan,10.1,13.2\n"+
			"Feb,12.4,15.0\n")

	records, err := NewLoader(dir).LoadTemperatures()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.TemperatureRecord{Month: "Jan", Kathmandu: 10.1, Pokhara: 13.2}, records[0])
	assert.Equal(t, "Feb", records[1].Month)
}

func TestLoader_LoadExams(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ExamsFile,
		"school,district,students,pass_percent\n"+
			"Shree Janata,Kaski,120,81.5\n"+
			"Bal Vidya,Kathmandu,300,92\n")

	records, err := NewLoader(dir).LoadExams()
	require.NoError(t, err)
	assert.Equal(t, []domain.ExamRecord{
		{District: "Kaski", Students: 120, PassPercent: 81.5},
		{District: "Kathmandu", Students: 300, PassPercent: 92},
	}, records)
}

func TestLoader_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ExamsFile, "district,students,pass_percent\n")

	records, err := NewLoader(dir).LoadExams()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string // empty means the file is not created
		sentinel error
		contains []string
	}{
		{
			name:     "missing file",
			sentinel: domain.ErrFileAccess,
			contains: []string{ExamsFile},
		},
		{
			name:     "empty file",
			content:  "\n",
			sentinel: domain.ErrSchema,
			contains: []string{"header"},
		},
		{
			name:     "missing column",
			content:  "district,students\nKaski,120\n",
			sentinel: domain.ErrSchema,
			contains: []string{`"pass_percent"`, ExamsFile},
		},
		{
			name:     "non numeric pass percent",
			content:  "district,students,pass_percent\nKaski,120,high\n",
			sentinel: domain.ErrSchema,
			contains: []string{"line 2", `"pass_percent"`, `"high"`},
		},
		{
			name:     "fractional students",
			content:  "district,students,pass_percent\nKaski,120,80\nLalitpur,12.5,70\n",
			sentinel: domain.ErrSchema,
			contains: []string{"line 3", `"students"`, "integer"},
		},
		{
			name:     "empty value",
			content:  "district,students,pass_percent\nKaski,,80\n",
			sentinel: domain.ErrSchema,
			contains: []string{`"students"`},
		},
		{
			name:     "ragged row",
			content:  "district,students,pass_percent\nKaski,120\n",
			sentinel: domain.ErrSchema,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			if tc.content != "" {
				writeFile(t, dir, ExamsFile, tc.content)
			}

			_, err := NewLoader(dir).LoadExams()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.sentinel), "got %v", err)
			for _, s := range tc.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestLoader_LoadAll_StopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, EarthquakesFile, "year,magnitude,deaths\n2015,7.8,9000\n")
	writeFile(t, dir, TemperaturesFile, "month,kathmandu,pokhara\nJan,10,13\n")

	_, err := NewLoader(dir).LoadAll()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFileAccess))
	assert.Contains(t, err.Error(), ExamsFile)

	writeFile(t, dir, ExamsFile, "district,students,pass_percent\nKaski,120,80\n")
	ds, err := NewLoader(dir).LoadAll()
	require.NoError(t, err)
	assert.Len(t, ds.Earthquakes, 1)
	assert.Len(t, ds.Temperatures, 1)
	assert.Len(t, ds.Exams, 1)
}
