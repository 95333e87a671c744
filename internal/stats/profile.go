package stats

import (
	"encoding/json"
	"fmt"
)

// Totals holds one value per Countable category, indexed by Countable
type Totals [numCountable]float64

// RatioValues holds one value per Ratio category, indexed by Ratio
type RatioValues [numRatio]float64

// MarshalJSON encodes the totals as an object keyed by category name
func (t Totals) MarshalJSON() ([]byte, error) {
	m := make(map[string]float64, numCountable)
	for i, v := range t {
		m[Countable(i).String()] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes an object keyed by category name. Unknown keys are rejected.
func (t *Totals) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out Totals
	for name, v := range m {
		c, err := ParseCategory(name)
		if err != nil {
			return err
		}
		cc, ok := c.(Countable)
		if !ok {
			return fmt.Errorf("category %s is not countable", name)
		}
		out[cc] = v
	}
	*t = out
	return nil
}

// MarshalJSON encodes the ratios as an object keyed by category name
func (r RatioValues) MarshalJSON() ([]byte, error) {
	m := make(map[string]float64, numRatio)
	for i, v := range r {
		m[Ratio(i).String()] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes an object keyed by category name
func (r *RatioValues) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out RatioValues
	for name, v := range m {
		c, err := ParseCategory(name)
		if err != nil {
			return err
		}
		rc, ok := c.(Ratio)
		if !ok {
			return fmt.Errorf("category %s is not a ratio", name)
		}
		out[rc] = v
	}
	*r = out
	return nil
}

// Profile is an immutable set of category values. The zero Profile holds no
// categories; profiles are built with NewProfile or derived with Project.
type Profile struct {
	counts Totals
	ratios RatioValues
	set    categorySet
}

// NewProfile builds a profile exposing every category
func NewProfile(counts Totals, ratios RatioValues) Profile {
	return Profile{counts: counts, ratios: ratios, set: allCategories}
}

// Count returns the value of a countable category, or 0 if it is not present
func (p Profile) Count(c Countable) float64 {
	if !p.set.has(c) {
		return 0
	}
	return p.counts[c]
}

// Ratio returns the value of a ratio category, or 0 if it is not present
func (p Profile) Ratio(r Ratio) float64 {
	if !p.set.has(r) {
		return 0
	}
	return p.ratios[r]
}

// Value returns the value of any category
func (p Profile) Value(c Category) float64 {
	switch v := c.(type) {
	case Countable:
		return p.Count(v)
	case Ratio:
		return p.Ratio(v)
	}
	return 0
}

// Has reports whether the category is part of the profile
func (p Profile) Has(c Category) bool {
	return p.set.has(c)
}

// Categories lists the profile's categories in canonical order
func (p Profile) Categories() []Category {
	return p.set.ordered()
}

// SameCategories reports whether both profiles expose the same category set.
// missingHere and missingThere list the categories only the other side has.
func (p Profile) SameCategories(other Profile) (missingHere, missingThere []Category) {
	return (other.set &^ p.set).ordered(), (p.set &^ other.set).ordered()
}

// Project returns a profile restricted to the given categories.
// Categories the profile does not have are ignored.
func (p Profile) Project(categories ...Category) Profile {
	var keep categorySet
	for _, c := range categories {
		keep |= bit(c)
	}
	out := p
	out.set = p.set & keep
	return out
}

// MarshalJSON encodes the profile as an object keyed by category name
func (p Profile) MarshalJSON() ([]byte, error) {
	m := make(map[string]float64, numCountable+numRatio)
	for _, c := range p.Categories() {
		m[c.String()] = p.Value(c)
	}
	return json.Marshal(m)
}
