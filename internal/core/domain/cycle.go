package domain

import "fmt"

// CycleClassification names a raw billing-cycle length. Calendar months,
// quarters and years are irregular, so classification uses inclusive
// tolerance bands instead of exact day counts.
type CycleClassification struct {
	CanonicalDays int
	Label         string
}

type cycleBand struct {
	min, max  int
	canonical int
	label     string
}

var cycleBands = []cycleBand{
	{28, 31, 30, "month"},
	{89, 92, 90, "quarter"},
	{180, 184, 180, "half-year"},
	{364, 366, 365, "year"},
	{730, 732, 730, "two-year"},
	{1095, 1097, 1095, "three-year"},
	{1825, 1827, 1825, "five-year"},
}

// ClassifyCycle maps a day count onto a named band. Values outside every band
// fall back to a literal "{n} days" label with the raw count as canonical
// length.
func ClassifyCycle(days int) CycleClassification {
	for _, b := range cycleBands {
		if days >= b.min && days <= b.max {
			return CycleClassification{CanonicalDays: b.canonical, Label: b.label}
		}
	}
	return CycleClassification{CanonicalDays: days, Label: fmt.Sprintf("%d days", days)}
}
