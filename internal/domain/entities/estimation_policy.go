package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Range is an inclusive min..max band.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// NamedRange is a band for one repair operation or one part.
type NamedRange struct {
	Name string  `yaml:"name" json:"name"`
	Min  float64 `yaml:"min" json:"min"`
	Max  float64 `yaml:"max" json:"max"`
	Unit string  `yaml:"unit,omitempty" json:"unit,omitempty"`
}

// EstimationPolicy holds the pricing assumptions the estimation agent works with.
// They live in configuration so a market can be re-priced without a release.
type EstimationPolicy struct {
	Market                 string       `yaml:"market"`
	Currency               string       `yaml:"currency"`
	LaborRate              float64      `yaml:"labor_rate"`
	LaborRateClamp         Range        `yaml:"labor_rate_clamp"`
	LaborHours             []NamedRange `yaml:"labor_hours"`
	PaintMaterialsPerPanel Range        `yaml:"paint_materials_per_panel"`
	PartPrices             []NamedRange `yaml:"part_prices"`
	ShopSupplies           Range        `yaml:"shop_supplies"`
	TaxName                string       `yaml:"tax_name"`
	TaxRate                float64      `yaml:"tax_rate"`
	RoundingStep           float64      `yaml:"rounding_step"`
	DivergenceThreshold    float64      `yaml:"divergence_threshold"`
}

// DefaultEstimationPolicy is the Swiss professional-garage baseline.
func DefaultEstimationPolicy() EstimationPolicy {
	return EstimationPolicy{
		Market:         "Switzerland",
		Currency:       "CHF",
		LaborRate:      140,
		LaborRateClamp: Range{Min: 110, Max: 180},
		LaborHours: []NamedRange{
			{Name: "PDR small dent", Min: 0.5, Max: 1.5, Unit: "h"},
			{Name: "Panel repaint", Min: 1.5, Max: 3.0, Unit: "h per panel"},
			{Name: "Blend adjacent panel", Min: 0.8, Max: 1.2, Unit: "h each"},
			{Name: "Bumper R&I or replace", Min: 1.5, Max: 3.0, Unit: "h"},
			{Name: "Headlight replace", Min: 0.6, Max: 1.2, Unit: "h"},
			{Name: "Windshield replace", Min: 1.0, Max: 1.5, Unit: "h"},
			{Name: "ADAS/sensor calibration or diagnostics", Min: 0.5, Max: 1.0, Unit: "h"},
		},
		PaintMaterialsPerPanel: Range{Min: 120, Max: 250},
		PartPrices: []NamedRange{
			{Name: "Bumper cover", Min: 450, Max: 1100},
			{Name: "Fender", Min: 300, Max: 800},
			{Name: "Headlight", Min: 500, Max: 1500, Unit: "LED/matrix higher"},
			{Name: "Windshield", Min: 600, Max: 1200, Unit: "with sensors higher"},
		},
		ShopSupplies:        Range{Min: 25, Max: 80},
		TaxName:             "VAT",
		TaxRate:             0.081,
		RoundingStep:        10,
		DivergenceThreshold: 0.5,
	}
}

var ErrInvalidEstimationPolicy = errors.New("invalid estimation policy")

func (p EstimationPolicy) Validate() error {
	var problems []string
	if strings.TrimSpace(p.Currency) == "" {
		problems = append(problems, "currency is required")
	}
	if p.LaborRate <= 0 {
		problems = append(problems, "labor_rate must be positive")
	}
	if p.LaborRateClamp.Min > p.LaborRateClamp.Max {
		problems = append(problems, "labor_rate_clamp is inverted")
	}
	if p.LaborRateClamp.Max > 0 && (p.LaborRate < p.LaborRateClamp.Min || p.LaborRate > p.LaborRateClamp.Max) {
		problems = append(problems, "labor_rate outside labor_rate_clamp")
	}
	if p.TaxRate < 0 || p.TaxRate >= 1 {
		problems = append(problems, "tax_rate must be in [0,1)")
	}
	if p.RoundingStep <= 0 {
		problems = append(problems, "rounding_step must be positive")
	}
	if p.DivergenceThreshold <= 0 {
		problems = append(problems, "divergence_threshold must be positive")
	}
	for name, r := range map[string]Range{"paint_materials_per_panel": p.PaintMaterialsPerPanel, "shop_supplies": p.ShopSupplies} {
		if r.Min > r.Max || r.Min < 0 {
			problems = append(problems, name+" is invalid")
		}
	}
	for _, r := range append(append([]NamedRange{}, p.LaborHours...), p.PartPrices...) {
		if strings.TrimSpace(r.Name) == "" || r.Min < 0 || r.Min > r.Max {
			problems = append(problems, fmt.Sprintf("range %q is invalid", r.Name))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidEstimationPolicy, strings.Join(problems, "; "))
	}
	return nil
}
