package gridlet

import (
	"slices"

	nt "gridlet/entity"
)

// sortRows orders rows by the sorted field without touching the input
// slice. No active sort preserves input order. The sort is stable, so
// rows comparing equal keep their relative order.
func sortRows[T any](rows []T, srt nt.Sort) []T {
	if !srt.Active() {
		return rows
	}

	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b T) int {
		cmp := fieldValue(a, srt.Key).Compare(fieldValue(b, srt.Key))
		if srt.Direction == nt.Desc {
			cmp = -cmp
		}
		return cmp
	})

	return out
}
