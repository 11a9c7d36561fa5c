package domain

import "strings"

// Location is one city/area pair where a bike model can be picked up.
type Location struct {
	City string `json:"city"`
	Area string `json:"area"`
}

// BikeGroup is a bike model (same name and type) aggregated across branches.
type BikeGroup struct {
	Bike      Bike
	Locations []Location
}

// GroupKey identifies identical bikes listed at several branches.
func GroupKey(b *Bike) string {
	return b.Name + "-" + b.Type
}

// GroupBikes collapses bikes with the same name and type into one group,
// collecting distinct locations. Group order follows first appearance.
func GroupBikes(bikes []Bike) []BikeGroup {
	index := make(map[string]int, len(bikes))
	groups := make([]BikeGroup, 0, len(bikes))

	for _, b := range bikes {
		loc := Location{City: b.City, Area: b.Area}
		key := GroupKey(&b)

		i, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, BikeGroup{Bike: b, Locations: []Location{loc}})
			continue
		}

		if !groups[i].HasLocation(loc) {
			groups[i].Locations = append(groups[i].Locations, loc)
		}
	}
	return groups
}

// HasLocation reports whether the group already lists loc.
func (g *BikeGroup) HasLocation(loc Location) bool {
	for _, l := range g.Locations {
		if l == loc {
			return true
		}
	}
	return false
}

// HasArea reports whether any location's area equals name, ignoring case.
func (g *BikeGroup) HasArea(name string) bool {
	for _, l := range g.Locations {
		if strings.EqualFold(l.Area, name) {
			return true
		}
	}
	return false
}

// PackagePrice is the cost of renting a bike for one package.
type PackagePrice struct {
	Package     PackageSelector
	PricePerDay float64
	Days        int
	Total       float64
	KmIncluded  int
}

// Quote prices the bike for a package.
func (b *Bike) Quote(p PackageSelector) PackagePrice {
	perDay := b.PricePerDay(p)
	return PackagePrice{
		Package:     p,
		PricePerDay: perDay,
		Days:        p.Days(),
		Total:       perDay * float64(p.Days()),
		KmIncluded:  b.Limit,
	}
}

// CardPackages are the packages a bike card offers for selection.
var CardPackages = []PackageSelector{
	PackageDaily,
	Package7Days,
	Package15Days,
	PackageMonthly,
}
