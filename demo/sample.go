package demo

import (
	randv2 "math/rand/v2"
	"slices"

	"github.com/samber/lo"
)

// RandomSortedUnique draws n integers in [minValue, maxValue] and returns
// them deduplicated and sorted ascending, so the result may be shorter
// than n.
func RandomSortedUnique(n, minValue, maxValue int) []int {
	return randomSortedUnique(randv2.IntN, n, minValue, maxValue)
}

func randomSortedUnique(intN func(n int) int, n, minValue, maxValue int) []int {
	if n <= 0 || minValue > maxValue {
		return []int{}
	}
	values := make([]int, 0, n)
	for i := 0; i < n; i++ {
		values = append(values, minValue+intN(maxValue-minValue+1))
	}
	values = lo.Uniq(values)
	slices.Sort(values)
	return values
}
