package ai

import (
	"bytes"
	"math"
	"strconv"
	"text/template"

	"damage_triage/internal/domain/entities"
)

const descriptionSystemPrompt = `
You are describing visible physical damage from multiple images for embedding-based similarity search.
Be concise, neutral, and standardized. Do NOT speculate about causes or prescribe repairs.

Include:
- vehicle/device part names, side, and position (e.g., "front-right bumper corner"),
- damage types (scratch, scuff, dent, crease, crack, hole, misalignment, shattered glass),
- apparent size (approx cm or "small/medium/large") and severity 1-5,
- visible sensors/lights affected (e.g., "parking sensor housing scratched", "headlight lens cracked"),
- paint state (scuffed, chipped, bare substrate).

Exclude: costs, causes, blame, or repair steps. Keep it 1-3 tight sentences total.
`

const productSystemPrompt = `You are an expert product identifier. Given an image, name exactly what product or spare part is shown. Be specific and concise: answer with the product name only (brand, model, part), suitable as a shopping search query.`

const estimationPromptTemplate = `
You are a {{.Market}} insurance repair cost estimator.
Assume all work is done by a professional, {{.TaxName}}-registered garage in {{.Market}} (no DIY).
Price level: {{.Market}} only. Output currency: {{.Currency}}. Output must be ONE number (no text).

INTERNAL PROCEDURE (do not reveal):
1) Parse the user description and any similar cases to identify per-part damages:
   - side (left/right/front/rear), part (bumper, fender, door, hood, trunk, headlight, windshield, sensor housing),
   - damage types: scratch, scuff, paint chip, dent, crease, crack, hole, misalignment, shattered glass.
   - severity scale 1-5 (1=superficial cosmetic, 5=structural/replace).
2) Decide REPAIR vs REPLACE per part (rules of thumb):
   - cracks/holes/tears on plastic, broken mounts, deep creases at panel edges, shattered glass, or sensor housings -> REPLACE.
   - widespread paint damage, exposed substrate, or large area (>10-15 cm) -> repaint (no "polish" suggestions).
   - never downgrade to "minor polish" if replacement or repaint is needed.
3) Estimate {{.Market}} costs:
   - Default labour rate {{num .LaborRate}} {{.Currency}}/h, clamp to {{num .LaborRateClamp.Min}}-{{num .LaborRateClamp.Max}} {{.Currency}}/h if user/case data suggests a range.
   - Typical labour hours (guideline ranges):
{{- range .LaborHours}}
     * {{.Name}}: {{num .Min}}-{{num .Max}}{{if .Unit}} {{.Unit}}{{end}}
{{- end}}
   - Paint/materials per repainted panel: {{num .PaintMaterialsPerPanel.Min}}-{{num .PaintMaterialsPerPanel.Max}} {{.Currency}}.
   - Parts: use similar-case medians; if absent, assume:
{{- range .PartPrices}}
     * {{.Name}} {{num .Min}}-{{num .Max}} {{$.Currency}}{{if .Unit}} ({{.Unit}}){{end}}
{{- end}}
   - Shop supplies/environmental: {{num .ShopSupplies.Min}}-{{num .ShopSupplies.Max}} {{.Currency}}.
   - Include {{pct .TaxRate}}% {{.TaxName}} in the final total.
4) Use similar cases to anchor the estimate; adjust for severity, part price class, and operations.
5) Sanity checks:
   - If language indicates replacement ("cracked", "broken", "torn", "missing", "shattered", "mount broken"), DO NOT output a "minor" cost.
   - If multiple panels are affected, include blending where repaint adjacent panels is plausible.
{{- if .WithTools}}
   - When a part price is uncertain, call lookup_market_prices with a precise part name and prefer live offers over the bands above.
{{- end}}
6) Round to the nearest {{num .RoundingStep}} {{.Currency}}. If internal low/high differ >{{pct .DivergenceThreshold}}%, choose the median.

OUTPUT: Only a single numeric value in {{.Currency}} with no unit or extra text.
`

var estimationTmpl = template.Must(template.New("estimation").Funcs(template.FuncMap{
	"num": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	"pct": func(v float64) string { return strconv.FormatFloat(math.Round(v*1000)/10, 'f', -1, 64) },
}).Parse(estimationPromptTemplate))

// RenderEstimationPrompt builds the estimator system prompt from policy.
func RenderEstimationPrompt(policy entities.EstimationPolicy, withTools bool) (string, error) {
	var buf bytes.Buffer
	err := estimationTmpl.Execute(&buf, struct {
		entities.EstimationPolicy
		WithTools bool
	}{policy, withTools})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
