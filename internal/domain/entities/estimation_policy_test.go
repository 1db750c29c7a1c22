package entities

import (
	"errors"
	"testing"
)

func TestEstimationPolicy_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		if err := DefaultEstimationPolicy().Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	cases := []struct {
		name   string
		mutate func(p *EstimationPolicy)
	}{
		{"no currency", func(p *EstimationPolicy) { p.Currency = "" }},
		{"tax rate of one", func(p *EstimationPolicy) { p.TaxRate = 1 }},
		{"negative tax", func(p *EstimationPolicy) { p.TaxRate = -0.1 }},
		{"zero rounding", func(p *EstimationPolicy) { p.RoundingStep = 0 }},
		{"inverted clamp", func(p *EstimationPolicy) { p.LaborRateClamp = Range{Min: 200, Max: 100} }},
		{"rate outside clamp", func(p *EstimationPolicy) { p.LaborRate = 300 }},
		{"inverted part band", func(p *EstimationPolicy) { p.PartPrices[0].Min = 5000 }},
		{"unnamed hours", func(p *EstimationPolicy) { p.LaborHours[0].Name = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultEstimationPolicy()
			tc.mutate(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidEstimationPolicy) {
				t.Fatalf("expected ErrInvalidEstimationPolicy, got %v", err)
			}
		})
	}
}
