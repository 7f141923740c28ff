package elev

import (
	"fmt"
	"math"

	"elevride/src/utils"
)

// planRoute turns a commanded floor list into the floors the car will actually
// stop at, or explains why the list cannot be ridden.
func (e *Elevator) planRoute(floors []int) ([]int, error) {
	if len(floors) == 0 {
		return nil, fmt.Errorf("%w: empty floor list", ErrValidation)
	}

	route := collapseRepeats(floors)
	if route[0] == e.state.CurrentFloor {
		route = route[1:]
	}
	if len(route) == 0 {
		return nil, fmt.Errorf("%w: already at floor %d, nothing to visit", ErrValidation, e.state.CurrentFloor)
	}

	distance := 0
	prev := e.state.CurrentFloor
	for _, floor := range route {
		if floor > e.state.BuildingHeight {
			return nil, fmt.Errorf("%w: floor %d in %s is above the top floor %d",
				ErrValidation, floor, utils.FormatFloors(floors), e.state.BuildingHeight)
		}
		if !utils.FloorInRange(floor) {
			return nil, fmt.Errorf("%w: floor %d is beyond ±%d", ErrValidation, floor, utils.MaxFloorMagnitude)
		}
		// Both ends are in range, so the step itself cannot overflow.
		step := abs(floor - prev)
		if step > math.MaxInt-e.state.Odometer-distance {
			return nil, fmt.Errorf("%w: odometer would overflow", ErrValidation)
		}
		distance += step
		prev = floor
	}
	return route, nil
}

// collapseRepeats keeps one floor from every run of equal neighbours: [9 9 10 9] -> [9 10 9].
func collapseRepeats(floors []int) []int {
	out := make([]int, 0, len(floors))
	for i, floor := range floors {
		if i > 0 && floor == floors[i-1] {
			continue
		}
		out = append(out, floor)
	}
	return out
}

// ParseFloorList reads typed-in floors such as "1, 20,3". Anything that is not a
// number is a validation error, like a fractional floor.
func ParseFloorList(s string) ([]float64, error) {
	values, err := utils.ParseFloorList(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return values, nil
}
