package trade

import "github.com/fortuna/janus/internal/stats"

// Differential holds category-by-category differences between two sides.
// Percentages are relative to side A.
type Differential struct {
	categories  []stats.Category
	diff        map[stats.Category]float64
	percentDiff map[stats.Category]float64
}

// Categories returns the evaluated categories in report order
func (d Differential) Categories() []stats.Category {
	return append([]stats.Category(nil), d.categories...)
}

// Diff returns sideA - sideB for the category
func (d Differential) Diff(c stats.Category) float64 {
	return d.diff[c]
}

// PercentDiff returns (sideA - sideB) / sideA * 100, or 0 when sideA is 0
func (d Differential) PercentDiff(c stats.Category) float64 {
	return d.percentDiff[c]
}

// Project returns the differential restricted to the given categories, in
// the order they are requested. Categories that were not evaluated are skipped.
func (d Differential) Project(categories ...stats.Category) Differential {
	out := Differential{
		diff:        make(map[stats.Category]float64, len(categories)),
		percentDiff: make(map[stats.Category]float64, len(categories)),
	}
	for _, c := range categories {
		delta, ok := d.diff[c]
		if !ok {
			continue
		}
		if _, dup := out.diff[c]; dup {
			continue
		}
		out.categories = append(out.categories, c)
		out.diff[c] = delta
		out.percentDiff[c] = d.percentDiff[c]
	}
	return out
}

// Evaluate compares two side profiles over the categories present in a.
func Evaluate(a, b SideProfile) (Differential, error) {
	missingInA, missingInB := a.Stats.SameCategories(b.Stats)
	if len(missingInA) > 0 || len(missingInB) > 0 {
		return Differential{}, &CategoryMismatchError{MissingInA: missingInA, MissingInB: missingInB}
	}

	categories := a.Stats.Categories()
	d := Differential{
		categories:  categories,
		diff:        make(map[stats.Category]float64, len(categories)),
		percentDiff: make(map[stats.Category]float64, len(categories)),
	}

	for _, c := range categories {
		av := a.Value(c)
		delta := av - b.Value(c)
		d.diff[c] = delta
		if av == 0 {
			d.percentDiff[c] = 0
		} else {
			d.percentDiff[c] = delta / av * 100
		}
	}

	return d, nil
}
