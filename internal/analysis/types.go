package analysis

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"cadence/internal/services"
)

var validate = validator.New()

// Event is one scored audio sample.
type Event struct {
	Timestamp        float64  `json:"timestamp" validate:"gte=0"`
	Intensity        float64  `json:"intensity"`
	Frequency        float64  `json:"frequency" validate:"gte=0"`
	SpectralCentroid *float64 `json:"spectralCentroid,omitempty"`
}

// Centroid returns the spectral centroid, treating a missing value as 0.
func (e Event) Centroid() float64 {
	if e.SpectralCentroid == nil {
		return 0
	}
	return *e.SpectralCentroid
}

// Result is an analysis document for one audio source.
type Result struct {
	Analysis          []Event         `json:"analysis" validate:"dive"`
	DurationInSeconds float64         `json:"durationInSeconds" validate:"gte=0"`
	Summary           json.RawMessage `json:"summary,omitempty"`
}

// Intensities returns the intensity column of events.
func Intensities(events []Event) []float64 {
	out := make([]float64, len(events))
	for i, e := range events {
		out[i] = e.Intensity
	}
	return out
}

// Frequencies returns the frequency column of events.
func Frequencies(events []Event) []float64 {
	out := make([]float64, len(events))
	for i, e := range events {
		out[i] = e.Frequency
	}
	return out
}

// Validate checks field ranges and that timestamps strictly increase.
func (r Result) Validate() error {
	if err := validate.Struct(r); err != nil {
		return services.Wrap(services.ErrValidation, "analysis", "validate", "invalid analysis document", err)
	}
	for i := 1; i < len(r.Analysis); i++ {
		if r.Analysis[i].Timestamp <= r.Analysis[i-1].Timestamp {
			msg := fmt.Sprintf("event %d timestamp %.3f does not follow %.3f", i, r.Analysis[i].Timestamp, r.Analysis[i-1].Timestamp)
			return services.Wrap(services.ErrValidation, "analysis", "validate", msg, nil)
		}
	}
	return nil
}

// Decode parses and validates an analysis document.
func Decode(r io.Reader) (Result, error) {
	var res Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return Result{}, services.Wrap(services.ErrValidation, "analysis", "decode", "malformed analysis JSON", err)
	}
	if err := res.Validate(); err != nil {
		return Result{}, err
	}
	return res, nil
}
