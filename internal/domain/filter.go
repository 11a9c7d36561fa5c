package domain

import "slices"

// FilterCategory names one of the filter panel groups.
type FilterCategory string

const (
	CategoryDuration     FilterCategory = "duration"
	CategoryTransmission FilterCategory = "transmission"
	CategoryBranch       FilterCategory = "branch"
	CategoryBrand        FilterCategory = "brand"
)

// IsList returns true for multi-select categories
func (c FilterCategory) IsList() bool {
	return c == CategoryTransmission || c == CategoryBranch || c == CategoryBrand
}

// FilterState holds the filter panel selections. List values keep insertion order.
type FilterState struct {
	Package      PackageSelector
	Transmission []string
	Branch       []string
	Brand        []string
}

// DefaultFilterState returns an empty selection with the daily package.
func DefaultFilterState() FilterState {
	return FilterState{
		Package:      DefaultPackage,
		Transmission: []string{},
		Branch:       []string{},
		Brand:        []string{},
	}
}

// Values returns the list for a multi-select category.
func (f FilterState) Values(c FilterCategory) []string {
	switch c {
	case CategoryTransmission:
		return f.Transmission
	case CategoryBranch:
		return f.Branch
	case CategoryBrand:
		return f.Brand
	default:
		return nil
	}
}

// Clone returns a deep copy so snapshots never share backing arrays.
func (f FilterState) Clone() FilterState {
	return FilterState{
		Package:      f.Package,
		Transmission: cloneStrings(f.Transmission),
		Branch:       cloneStrings(f.Branch),
		Brand:        cloneStrings(f.Brand),
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}
