package infra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	testcases := []struct {
		name     string
		cmp      func() int64
		expected int64
	}{
		{"int less", func() int64 { return Compare(1, 2) }, -1},
		{"int equal", func() int64 { return Compare(7, 7) }, 0},
		{"int greater", func() int64 { return Compare(9, -9) }, 1},
		{"uint8 greater", func() int64 { return Compare[uint8](255, 0) }, 1},
		{"float less", func() int64 { return Compare(1.0, 1.1) }, -1},
		{"string greater", func() int64 { return Compare("b", "a") }, 1},
		{"string equal", func() int64 { return Compare("xbst", "xbst") }, 0},
		{"nan", func() int64 { return Compare(math.NaN(), 1.0) }, 0},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cmp())
		})
	}
}

func TestCompareAsComparator(t *testing.T) {
	var cmp OrderedKeyComparator[string] = Compare[string]
	assert.Less(t, cmp("abc", "abd"), int64(0))
	assert.Greater(t, cmp("abd", "abc"), int64(0))
}
