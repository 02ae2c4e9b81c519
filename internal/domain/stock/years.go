package stock

import (
	"sort"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
)

// AvailableYears años distintos presentes en el libro de facturas, del más reciente al más antiguo.
func AvailableYears(invoices []entity.Invoice) []int {
	seen := make(map[int]struct{}, len(invoices))
	years := make([]int, 0)
	for _, inv := range invoices {
		y := inv.Date.Year()
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
