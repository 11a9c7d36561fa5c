package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownPackage is returned when a package selector cannot be recognised.
var ErrUnknownPackage = errors.New("unknown rental package")

// PackageSelector is a named rental length mapped to a fixed day count.
type PackageSelector string

const (
	PackageDaily   PackageSelector = "daily"
	Package7Days   PackageSelector = "7days"
	Package15Days  PackageSelector = "15days"
	PackageMonthly PackageSelector = "monthly"
	Package3Months PackageSelector = "3months"
	Package6Months PackageSelector = "6months"
	PackageYearly  PackageSelector = "yearly"
)

// Packages lists all selectors in ascending length.
var Packages = []PackageSelector{
	PackageDaily,
	Package7Days,
	Package15Days,
	PackageMonthly,
	Package3Months,
	Package6Months,
	PackageYearly,
}

var packageDays = map[PackageSelector]int{
	PackageDaily:   1,
	Package7Days:   7,
	Package15Days:  15,
	PackageMonthly: 30,
	Package3Months: 90,
	Package6Months: 180,
	PackageYearly:  365,
}

// Days returns the fixed day count of the package, or 0 for an unknown selector.
func (p PackageSelector) Days() int {
	return packageDays[p]
}

// IsValid reports whether p is one of the known selectors.
func (p PackageSelector) IsValid() bool {
	_, ok := packageDays[p]
	return ok
}

// DropoffFrom returns pickup moved forward by the package length at the same time of day.
func (p PackageSelector) DropoffFrom(pickup time.Time) time.Time {
	return pickup.AddDate(0, 0, p.Days())
}

// packageLabels maps display labels used by filters and bike cards to selectors.
var packageLabels = map[string]PackageSelector{
	"daily":            PackageDaily,
	"daily package":    PackageDaily,
	"weekly":           Package7Days,
	"weekly package":   Package7Days,
	"7 days":           Package7Days,
	"15 days":          Package15Days,
	"15 days package":  Package15Days,
	"monthly":          PackageMonthly,
	"monthly package":  PackageMonthly,
	"3 months":         Package3Months,
	"3 months package": Package3Months,
	"6 months":         Package6Months,
	"6 months package": Package6Months,
	"yearly":           PackageYearly,
	"yearly package":   PackageYearly,
}

// ParsePackage accepts canonical selectors ("7days") as well as display
// labels used by bike cards ("Weekly", "15 Days", "Monthly Package").
// Any other input is rejected with ErrUnknownPackage.
func ParsePackage(s string) (PackageSelector, error) {
	d := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if d == "" {
		return "", fmt.Errorf("%w: empty value", ErrUnknownPackage)
	}
	if p := PackageSelector(d); p.IsValid() {
		return p, nil
	}
	if p, ok := packageLabels[d]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPackage, s)
}
