package procurement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalPrice(t *testing.T) {
	cases := []struct {
		name      string
		unitPrice int64
		markup    float64
		quantity  int
		expected  int64
	}{
		{"twenty percent markup", 150000, 20, 1, 180000},
		{"quantity multiplies marked up unit", 45000, 25, 30, 1687500},
		{"zero markup", 8000, 0, 1, 8000},
		{"zero markup with quantity", 8000, 0, 5, 40000},
		{"fractional markup rounds half up", 100, 12.5, 1, 113},
		{"rounding happens before quantity", 100, 12.5, 4, 452},
		{"zero unit price", 0, 50, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputeTotalPrice(tc.unitPrice, tc.markup, tc.quantity))
		})
	}
}
