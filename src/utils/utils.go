package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNotWholeNumber = errors.New("not a whole number")
	ErrNotANumber     = errors.New("not a number")
)

// MaxFloorMagnitude bounds floors in both directions. Every float64 up to it is an
// exact integer, and differences between two such floors cannot overflow an int.
const MaxFloorMagnitude = 1 << 53

// FloorInRange reports whether floor lies within ±MaxFloorMagnitude.
func FloorInRange(floor int) bool {
	return floor >= -MaxFloorMagnitude && floor <= MaxFloorMagnitude
}

// IsWholeNumber reports whether x is finite and has no fractional part, so 5.0 passes and 3.1 does not.
func IsWholeNumber(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	return x == math.Trunc(x)
}

// ToFloors converts integer-valued numbers to floors. The first offending entry is reported.
func ToFloors(values []float64) ([]int, error) {
	floors := make([]int, 0, len(values))
	for i, v := range values {
		if !IsWholeNumber(v) || math.Abs(v) > MaxFloorMagnitude {
			return nil, fmt.Errorf("%w: entry %d is %v", ErrNotWholeNumber, i, v)
		}
		floors = append(floors, int(v))
	}
	return floors, nil
}

// ParseFloorList splits "1, 20,3" or "1 20 3" into numbers. Whether each number is a
// valid floor is left to ToFloors.
func ParseFloorList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotANumber, f)
		}
		values = append(values, v)
	}
	return values, nil
}

// FormatFloors renders a floor list as [9, 3, 9, 10].
func FormatFloors(floors []int) string {
	parts := make([]string, len(floors))
	for i, f := range floors {
		parts[i] = strconv.Itoa(f)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
