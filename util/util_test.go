package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Min(2, 7))
	assert.Equal(7, Max(2, 7))
	assert.Equal(-3, Min(-3, -3))
}

func TestClamp(t *testing.T) {
	cases := []struct {
		num, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Clamp(c.num, c.lo, c.hi))
	}
}

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"b": 1, "c": 2, "a": 3}
	assert.Equal(t, []string{"a", "b", "c"}, GetKeysSorted(m))
}
