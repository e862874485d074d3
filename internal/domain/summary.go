package domain

import "time"

// PublishedSummary is the envelope for one dataset's summary on the wire.
type PublishedSummary struct {
	Dataset     string    `json:"dataset"`
	GeneratedAt time.Time `json:"generated_at"`
	Summary     any       `json:"summary"`
}

// SummariesFor wraps every non-nil result in a PublishedSummary stamped with
// the package clock, in dataset order.
func SummariesFor(r Results) []PublishedSummary {
	now := clock.Now().UTC()
	var out []PublishedSummary
	if r.Earthquakes != nil {
		out = append(out, PublishedSummary{Dataset: DatasetEarthquakes, GeneratedAt: now, Summary: r.Earthquakes})
	}
	if r.Temperatures != nil {
		out = append(out, PublishedSummary{Dataset: DatasetTemperatures, GeneratedAt: now, Summary: r.Temperatures})
	}
	if r.Exams != nil {
		out = append(out, PublishedSummary{Dataset: DatasetExams, GeneratedAt: now, Summary: r.Exams})
	}
	return out
}
