package grid

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowsFromLength(t *testing.T) {
	cases := []struct {
		length float64
		rows   int
	}{
		{10, 50},
		{2, 10},
		{0.1, 1},
		{0.21, 2},
		{12.5, 63},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("length %v", c.length), func(t *testing.T) {
			assert.Equal(t, c.rows, New(c.length).Rows())
		})
	}
}

func TestDegenerateLengthsUseDefault(t *testing.T) {
	for _, l := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		g := New(l)
		assert.Equal(t, 50, g.Rows(), "length %v", l)
		assert.Equal(t, 10.0, g.LengthSeconds())
	}
}

func TestParseLength(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(12.5, ParseLength("12.5"))
	assert.Equal(10.0, ParseLength(""))
	assert.Equal(10.0, ParseLength("abc"))
	assert.Equal(10.0, ParseLength("-4"))
	assert.Equal(30.0, ParseLength(" 30 "))
	assert.Equal(12.0, ParseLength("12abc"))
	assert.Equal(12.5, ParseLength("12.5s"))
	assert.Equal(0.5, ParseLength(".5"))
	assert.Equal(100.0, ParseLength("1e2"))
	assert.Equal(1.0, ParseLength("1e"))
	assert.Equal(10.0, ParseLength("0"))
}

func TestTimeOfIsStrictlyDecreasing(t *testing.T) {
	g := New(10)
	for row := 1; row < g.Rows(); row++ {
		if g.TimeOf(row) >= g.TimeOf(row-1) {
			t.Fatalf("TimeOf(%d)=%d is not below TimeOf(%d)=%d", row, g.TimeOf(row), row-1, g.TimeOf(row-1))
		}
	}
	assert.Equal(t, 0, g.TimeOf(g.Rows()-1))
	assert.Equal(t, (g.Rows()-1)*200, g.TimeOf(0))
}

func TestTimeOfTenRows(t *testing.T) {
	g := New(2)
	assert := assert.New(t)
	assert.Equal(10, g.Rows())
	assert.Equal(0, g.TimeOf(9))
	assert.Equal(1400, g.TimeOf(2))
	assert.Equal(1000, g.TimeOf(4))
}

func TestRowAtInvertsTimeOf(t *testing.T) {
	g := New(2)
	for row := 0; row < g.Rows(); row++ {
		got, ok := g.RowAt(g.TimeOf(row))
		assert.True(t, ok)
		assert.Equal(t, row, got)
	}
	_, ok := g.RowAt(5000)
	assert.False(t, ok)
	_, ok = g.RowAt(-400)
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	g := New(2)
	assert := assert.New(t)
	assert.True(g.Contains(0, 0))
	assert.True(g.Contains(3, 9))
	assert.False(g.Contains(4, 0))
	assert.False(g.Contains(0, 10))
	assert.False(g.Contains(-1, 3))
}
