package chart

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/nepal-data-analyzer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func assertPNG(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, pngMagic), "%s is not a PNG", path)
	return data
}

func TestRenderer_RenderEarthquakes(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.EarthquakeChartFile)
	s := domain.EarthquakeSummary{
		Total:  3,
		ByYear: []domain.YearCount{{Year: 2015, Count: 2}, {Year: 2023, Count: 1}},
	}

	require.NoError(t, NewRenderer(10, 6).RenderEarthquakes(path, s))
	assertPNG(t, path)
}

func TestRenderer_RenderTemperatures(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.TemperatureChartFile)
	records := []domain.TemperatureRecord{
		{Month: "Jan", Kathmandu: 10.1, Pokhara: 13.2},
		{Month: "Feb", Kathmandu: 12.4, Pokhara: 15.0},
		{Month: "Mar", Kathmandu: 16.6, Pokhara: 19.4},
	}

	require.NoError(t, NewRenderer(10, 6).RenderTemperatures(path, records))
	assertPNG(t, path)
}

func TestRenderer_RenderExams(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ExamChartFile)
	districts := []domain.DistrictStat{
		{District: "Bhaktapur", PassPercent: 78.4, Students: 300},
		{District: "Chitwan", PassPercent: 74.0, Students: 500},
		{District: "Jhapa", PassPercent: 69.5, Students: 410},
		{District: "Kaski", PassPercent: 84.5, Students: 800},
		{District: "Kathmandu", PassPercent: 88.2, Students: 1300},
		{District: "Lalitpur", PassPercent: 86.0, Students: 700},
		{District: "Morang", PassPercent: 66.1, Students: 390},
	}

	require.NoError(t, NewRenderer(10, 6).RenderExams(path, domain.ExamSummary{Districts: districts}))
	assertPNG(t, path)
}

func TestRenderer_IsDeterministic(t *testing.T) {
	dir := t.TempDir()
	s := domain.EarthquakeSummary{ByYear: []domain.YearCount{{Year: 1988, Count: 1}, {Year: 2015, Count: 4}}}
	r := NewRenderer(8, 5)

	first := filepath.Join(dir, "a.png")
	second := filepath.Join(dir, "b.png")
	require.NoError(t, r.RenderEarthquakes(first, s))
	require.NoError(t, r.RenderEarthquakes(second, s))

	assert.Equal(t, assertPNG(t, first), assertPNG(t, second))
}

func TestRenderer_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", domain.EarthquakeChartFile)
	s := domain.EarthquakeSummary{ByYear: []domain.YearCount{{Year: 2015, Count: 1}}}

	err := NewRenderer(10, 6).RenderEarthquakes(path, s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOutputWrite))
}

func TestDistrictColor_Cycles(t *testing.T) {
	assert.Equal(t, color.RGBA{B: 255, A: 255}, DistrictColor(0))
	assert.Equal(t, color.RGBA{R: 165, G: 42, B: 42, A: 255}, DistrictColor(5))
	assert.Equal(t, DistrictColor(0), DistrictColor(6))
	assert.Equal(t, DistrictColor(2), DistrictColor(14))
}
