package elev

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tiendc/go-deepcopy"

	"elevride/src/types"
	"elevride/src/utils"
)

// Snapshot returns a deep copy of the elevator state that the caller may keep or modify.
func (e *Elevator) Snapshot() (types.ElevState, error) {
	var snap types.ElevState
	if err := deepcopy.Copy(&snap, &e.state); err != nil {
		return types.ElevState{}, err
	}
	return snap, nil
}

// Preview rides floors on a copy of the elevator and returns the state it would end in.
// Nothing is reported, recorded or changed on e.
func (e *Elevator) Preview(floors []int) (types.ElevState, error) {
	snap, err := e.Snapshot()
	if err != nil {
		return types.ElevState{}, err
	}
	sim := &Elevator{
		state:  snap,
		out:    io.Discard,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if err := sim.TravelThroughFloorList(floors, types.Silent); err != nil {
		return types.ElevState{}, err
	}
	return sim.state, nil
}

func (e *Elevator) previewFloats(values []float64) (types.ElevState, error) {
	floors, err := utils.ToFloors(values)
	if err != nil {
		return types.ElevState{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return e.Preview(floors)
}
