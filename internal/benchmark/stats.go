package benchmark

import (
	"encoding/json"
	"math"
	"os"
	"time"
)

// Stats summarize the signed percentage errors of the comparable results.
type Stats struct {
	Count          int      `json:"count"`
	MeanErrorPct   *float64 `json:"meanErrorPct"`
	StdDevErrorPct *float64 `json:"stdDevErrorPct"`
	MAPE           *float64 `json:"mape"`
}

// ComputeStats uses the population standard deviation.
func ComputeStats(results []Result) Stats {
	var errs []float64
	for _, r := range results {
		if r.ErrorPct != nil && r.APIAmount != nil && r.HistoricalAmount != nil {
			errs = append(errs, *r.ErrorPct)
		}
	}
	if len(errs) == 0 {
		return Stats{}
	}

	n := float64(len(errs))
	var sum, absSum float64
	for _, e := range errs {
		sum += e
		absSum += math.Abs(e)
	}
	mean := sum / n
	var variance float64
	for _, e := range errs {
		variance += (e - mean) * (e - mean)
	}
	std := math.Sqrt(variance / n)
	mape := absSum / n
	return Stats{Count: len(errs), MeanErrorPct: &mean, StdDevErrorPct: &std, MAPE: &mape}
}

type Report struct {
	Timestamp time.Time `json:"timestamp"`
	Stats     Stats     `json:"stats"`
	Results   []Result  `json:"results"`
}

func WriteReport(name string, report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(name, data, 0o644)
}
