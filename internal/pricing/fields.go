package pricing

import "sort"

// ProcessCostField names a per-unit cost produced by one printing process.
// The string values match the field names stored on estimate records.
type ProcessCostField string

const (
	FieldPaperAndCutting ProcessCostField = "paperAndCuttingCostPerCard"
	FieldLP              ProcessCostField = "lpCostPerCard"
	FieldFS              ProcessCostField = "fsCostPerCard"
	FieldEMB             ProcessCostField = "embCostPerCard"
	FieldLPSandwich      ProcessCostField = "lpCostPerCardSandwich"
	FieldFSSandwich      ProcessCostField = "fsCostPerCardSandwich"
	FieldEMBSandwich     ProcessCostField = "embCostPerCardSandwich"
	FieldDigital         ProcessCostField = "digitalCostPerCard"
	FieldDieCutting      ProcessCostField = "dieCuttingCostPerCard"
	FieldPasting         ProcessCostField = "pastingCostPerCard"
)

// knownFields keeps the aggregation order stable.
var knownFields = []ProcessCostField{
	FieldPaperAndCutting,
	FieldLP,
	FieldFS,
	FieldEMB,
	FieldLPSandwich,
	FieldFSSandwich,
	FieldEMBSandwich,
	FieldDigital,
	FieldDieCutting,
	FieldPasting,
}

var fieldLabels = map[ProcessCostField]string{
	FieldPaperAndCutting: "Paper & Cutting",
	FieldLP:              "Letterpress",
	FieldFS:              "Foil Stamping",
	FieldEMB:             "Embossing",
	FieldLPSandwich:      "Letterpress (Sandwich)",
	FieldFSSandwich:      "Foil Stamping (Sandwich)",
	FieldEMBSandwich:     "Embossing (Sandwich)",
	FieldDigital:         "Digital Printing",
	FieldDieCutting:      "Die Cutting",
	FieldPasting:         "Pasting",
}

// KnownFields returns every process cost field in aggregation order.
func KnownFields() []ProcessCostField {
	out := make([]ProcessCostField, len(knownFields))
	copy(out, knownFields)
	return out
}

// ParseProcessCostField resolves a stored field name.
func ParseProcessCostField(name string) (ProcessCostField, bool) {
	f := ProcessCostField(name)
	_, ok := fieldLabels[f]
	return f, ok
}

// Label returns the display label, or the raw name for unknown fields.
func (f ProcessCostField) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// NormalizeCosts splits raw input into the known fields, rendered as plain
// decimal strings after lenient coercion, and the names it does not know.
// Unknown names are returned sorted.
func NormalizeCosts(perProcessCosts map[string]any) (map[string]string, []string) {
	known := make(map[string]string, len(perProcessCosts))
	var unknown []string
	for name, raw := range perProcessCosts {
		if _, ok := ParseProcessCostField(name); !ok {
			unknown = append(unknown, name)
			continue
		}
		known[name] = coerce(raw).String()
	}
	sort.Strings(unknown)
	return known, unknown
}

// CostsFromStrings widens stored cost strings for ComputeTotalCost.
func CostsFromStrings(costs map[string]string) map[string]any {
	out := make(map[string]any, len(costs))
	for k, v := range costs {
		out[k] = v
	}
	return out
}
