package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWholeNumber(t *testing.T) {
	for _, v := range []float64{0, 5, 5.0, -3, 1e6} {
		assert.True(t, IsWholeNumber(v), "%v", v)
	}
	for _, v := range []float64{3.1, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.False(t, IsWholeNumber(v), "%v", v)
	}
}

func TestToFloors(t *testing.T) {
	floors, err := ToFloors([]float64{1, 5.0, -2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5, -2}, floors)

	_, err = ToFloors([]float64{1, 3, 3.1})
	require.ErrorIs(t, err, ErrNotWholeNumber)
	assert.Contains(t, err.Error(), "entry 2")

	_, err = ToFloors([]float64{MaxFloorMagnitude + 2})
	assert.ErrorIs(t, err, ErrNotWholeNumber)

	floors, err = ToFloors([]float64{-MaxFloorMagnitude})
	require.NoError(t, err)
	assert.True(t, FloorInRange(floors[0]))
	assert.False(t, FloorInRange(MaxFloorMagnitude+1))

	_, err = ToFloors([]float64{1e300})
	assert.ErrorIs(t, err, ErrNotWholeNumber)

	floors, err = ToFloors(nil)
	require.NoError(t, err)
	assert.Empty(t, floors)
}

func TestParseFloorList(t *testing.T) {
	values, err := ParseFloorList("1, 20,3 -4\t5.0")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 20, 3, -4, 5}, values)

	_, err = ParseFloorList("1,ground,3")
	assert.ErrorIs(t, err, ErrNotANumber)
	assert.NotErrorIs(t, err, ErrNotWholeNumber)

	values, err = ParseFloorList("")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestFormatFloors(t *testing.T) {
	assert.Equal(t, "[9, 3, 9, 10]", FormatFloors([]int{9, 3, 9, 10}))
	assert.Equal(t, "[]", FormatFloors(nil))
}
