package domain

import (
	"fmt"
	"sort"
)

// DistrictStat is the per-district aggregate: unweighted mean pass percentage
// and total students.
type DistrictStat struct {
	District    string  `json:"district"`
	PassPercent float64 `json:"pass_percent"`
	Students    int     `json:"students"`
}

// ExamSummary holds the headline figures for the exam dataset.
type ExamSummary struct {
	TotalStudents   int            `json:"total_students"`
	AveragePass     float64        `json:"average_pass_percent"`
	BestDistrict    string         `json:"best_district"`
	BestPassPercent float64        `json:"best_pass_percent"`
	Districts       []DistrictStat `json:"districts"`
}

// AnalyzeExams sums students, averages pass_percent over all rows, and groups
// rows by district. Districts are ordered by name; the best district is the
// first in that order with the highest mean.
func AnalyzeExams(records []ExamRecord) (ExamSummary, error) {
	if len(records) == 0 {
		return ExamSummary{}, fmt.Errorf("analyze %s: %w", DatasetExams, ErrEmptyDataset)
	}

	type group struct {
		pass     []float64
		students int
	}

	groups := make(map[string]*group)
	pass := make([]float64, len(records))
	students := 0
	for i, r := range records {
		pass[i] = r.PassPercent
		students += r.Students

		g, ok := groups[r.District]
		if !ok {
			g = &group{}
			groups[r.District] = g
		}
		g.pass = append(g.pass, r.PassPercent)
		g.students += r.Students
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	districts := make([]DistrictStat, len(names))
	means := make([]float64, len(names))
	for i, name := range names {
		g := groups[name]
		means[i] = mean(g.pass)
		districts[i] = DistrictStat{District: name, PassPercent: means[i], Students: g.students}
	}
	best := argmax(means)

	return ExamSummary{
		TotalStudents:   students,
		AveragePass:     mean(pass),
		BestDistrict:    districts[best].District,
		BestPassPercent: districts[best].PassPercent,
		Districts:       districts,
	}, nil
}

// ExamStatsTable lays out the per-district aggregate as the
// district,pass_percent,students table.
func ExamStatsTable(s ExamSummary) Table {
	rows := make([][]string, 0, len(s.Districts))
	for _, d := range s.Districts {
		rows = append(rows, []string{d.District, FormatFloat(d.PassPercent), FormatInt(d.Students)})
	}
	return Table{
		Header: []string{"district", "pass_percent", "students"},
		Rows:   rows,
	}
}
