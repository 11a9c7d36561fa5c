package filterstate

import (
	"slices"
	"strings"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

// Match проверяет, проходит ли модель байка через выбранные фильтры.
// Пустой список в категории не фильтрует.
//
// - transmission: тип байка в нижнем регистре входит в список
// - branch: хотя бы один район совпадает (без учета регистра)
// - brand: название содержит хотя бы один бренд (без учета регистра)
func Match(f domain.FilterState, g *domain.BikeGroup) bool {
	if len(f.Transmission) > 0 && !slices.Contains(f.Transmission, strings.ToLower(g.Bike.Type)) {
		return false
	}

	if len(f.Branch) > 0 && !slices.ContainsFunc(f.Branch, g.HasArea) {
		return false
	}

	if len(f.Brand) > 0 {
		name := strings.ToLower(g.Bike.Name)
		if !slices.ContainsFunc(f.Brand, func(brand string) bool {
			return strings.Contains(name, strings.ToLower(brand))
		}) {
			return false
		}
	}

	return true
}

// Apply группирует байки и оставляет только подходящие группы
func Apply(f domain.FilterState, bikes []domain.Bike) []domain.BikeGroup {
	groups := domain.GroupBikes(bikes)
	result := make([]domain.BikeGroup, 0, len(groups))
	for i := range groups {
		if Match(f, &groups[i]) {
			result = append(result, groups[i])
		}
	}
	return result
}
