// Package elev models a single elevator car riding through commanded floor lists.
package elev

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/google/uuid"

	"elevride/src/config"
	"elevride/src/types"
	"elevride/src/utils"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrValidation    = errors.New("validation error")
)

// TripRecorder receives a summary of every completed traversal.
type TripRecorder interface {
	Record(trip types.Trip) error
}

// Elevator owns one car's state. It is not safe for concurrent use; see StateMgr.
type Elevator struct {
	state    types.ElevState
	out      io.Writer
	logger   *slog.Logger
	recorder TripRecorder
}

type Option func(e *Elevator)

func WithSpeed(speed float64) Option {
	return func(e *Elevator) { e.state.Speed = speed }
}

func WithName(name string) Option {
	return func(e *Elevator) { e.state.Name = name }
}

func WithBuildingName(name string) Option {
	return func(e *Elevator) { e.state.BuildingName = name }
}

// WithOutput sets where status reports are written.
func WithOutput(w io.Writer) Option {
	return func(e *Elevator) { e.out = w }
}

// SetOutput redirects status reports after construction.
func (e *Elevator) SetOutput(w io.Writer) {
	e.out = w
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Elevator) { e.logger = logger }
}

func WithTripRecorder(r TripRecorder) Option {
	return func(e *Elevator) { e.recorder = r }
}

// New creates an elevator idling at startFloor in a building whose top floor is buildingHeight.
func New(startFloor, buildingHeight int, opts ...Option) (*Elevator, error) {
	e := &Elevator{
		state: types.ElevState{
			StartFloor:     startFloor,
			CurrentFloor:   startFloor,
			BuildingHeight: buildingHeight,
			Speed:          config.DefaultSpeed,
			Name:           config.DefaultName,
			BuildingName:   config.DefaultBuildingName,
			PendingFloors:  []int{},
			VisitedFloors:  []int{startFloor},
		},
		out:    os.Stdout,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if startFloor > buildingHeight {
		return nil, fmt.Errorf("%w: start floor %d is above the top floor %d", ErrConfiguration, startFloor, buildingHeight)
	}
	if !utils.FloorInRange(startFloor) {
		return nil, fmt.Errorf("%w: start floor %d is beyond ±%d", ErrConfiguration, startFloor, utils.MaxFloorMagnitude)
	}
	if !(e.state.Speed > 0) {
		return nil, fmt.Errorf("%w: speed must be positive, got %v", ErrConfiguration, e.state.Speed)
	}

	e.logger.Debug("Elevator initialized",
		"name", e.state.Name,
		"floor", startFloor,
		"height", buildingHeight,
		"speed", e.state.Speed)
	return e, nil
}

func (e *Elevator) Name() string { return e.state.Name }
func (e *Elevator) BuildingName() string { return e.state.BuildingName }
func (e *Elevator) BuildingHeight() int { return e.state.BuildingHeight }
func (e *Elevator) Speed() float64 { return e.state.Speed }
func (e *Elevator) StartFloor() int { return e.state.StartFloor }
func (e *Elevator) CurrentFloor() int { return e.state.CurrentFloor }
func (e *Elevator) Odometer() int { return e.state.Odometer }
func (e *Elevator) ElapsedTime() float64 { return e.state.ElapsedTime }
func (e *Elevator) NextFloor() (int, bool) { return e.state.NextFloor.Get() }
func (e *Elevator) FinalFloor() (int, bool) { return e.state.FinalFloor.Get() }

// VisitedFloors returns a copy of every floor occupied so far, starting floor first.
func (e *Elevator) VisitedFloors() []int { return slices.Clone(e.state.VisitedFloors) }

// PendingFloors returns a copy of the floors still to visit in the current traversal.
func (e *Elevator) PendingFloors() []int { return slices.Clone(e.state.PendingFloors) }

func (e *Elevator) DistanceToNext() (int, bool) {
	next, ok := e.state.NextFloor.Get()
	if !ok {
		return 0, false
	}
	return next - e.state.CurrentFloor, true
}

func (e *Elevator) TimeToNext() (float64, bool) {
	dist, ok := e.DistanceToNext()
	if !ok {
		return 0, false
	}
	return float64(abs(dist)) / e.state.Speed, true
}

func (e *Elevator) DirectionToNext() (types.MotorDirection, bool) {
	dist, ok := e.DistanceToNext()
	if !ok {
		return types.MD_Stop, false
	}
	return getDirection(dist), true
}

// RemainingDistance is the floors still to travel along the commanded path, backtracking included.
func (e *Elevator) RemainingDistance() int {
	total := 0
	prev := e.state.CurrentFloor
	for _, floor := range e.state.PendingFloors {
		total += abs(floor - prev)
		prev = floor
	}
	return total
}

func (e *Elevator) RemainingTime() float64 {
	return float64(e.RemainingDistance()) / e.state.Speed
}

// TravelToFloor sends the elevator to a single floor.
func (e *Elevator) TravelToFloor(floor int, verbosity types.Verbosity) error {
	return e.TravelThroughFloorList([]int{floor}, verbosity)
}

// TravelThroughFloats accepts integer-valued numbers such as 5.0 and rejects anything fractional.
func (e *Elevator) TravelThroughFloats(values []float64, verbosity types.Verbosity) error {
	if len(values) == 0 {
		return e.reject(fmt.Errorf("%w: empty floor list", ErrValidation))
	}
	floors, err := utils.ToFloors(values)
	if err != nil {
		return e.reject(fmt.Errorf("%w: %w", ErrValidation, err))
	}
	return e.TravelThroughFloorList(floors, verbosity)
}

// TravelThroughFloorList visits floors in order. The whole list is validated
// before the elevator moves, so a rejected list leaves the state untouched.
func (e *Elevator) TravelThroughFloorList(floors []int, verbosity types.Verbosity) error {
	route, err := e.planRoute(floors)
	if err != nil {
		return e.reject(err)
	}

	from := e.state.CurrentFloor
	odometerBefore, elapsedBefore := e.state.Odometer, e.state.ElapsedTime
	e.state.PendingFloors = slices.Clone(route)
	e.state.FinalFloor = types.SomeFloor(route[len(route)-1])

	for _, floor := range route {
		e.state.NextFloor = types.SomeFloor(floor)
		dist, _ := e.DistanceToNext()
		stepTime, _ := e.TimeToNext()
		e.state.Odometer += abs(dist)
		e.state.ElapsedTime += stepTime

		if verbosity >= types.EveryStep {
			e.emitReport()
		}

		e.logger.Debug("Moving to floor",
			"from", e.state.CurrentFloor,
			"to", floor,
			"direction", getDirection(dist),
			"stepTime", stepTime)
		e.state.CurrentFloor = floor
		e.state.VisitedFloors = append(e.state.VisitedFloors, floor)
		e.state.PendingFloors = e.state.PendingFloors[1:]
	}
	e.state.NextFloor = types.OptFloor{}
	e.state.Trips++

	if verbosity >= types.FinalOnly {
		e.emitReport()
	}

	trip := types.Trip{
		ID:       uuid.New().String(),
		Elevator: e.state.Name,
		From:     from,
		Floors:   route,
		Distance: e.state.Odometer - odometerBefore,
		Duration: e.state.ElapsedTime - elapsedBefore,
	}
	e.logger.Info("Traversal complete",
		"trip", trip.ID,
		"floors", utils.FormatFloors(route),
		"distance", trip.Distance,
		"odometer", e.state.Odometer)
	if e.recorder != nil {
		if err := e.recorder.Record(trip); err != nil {
			e.logger.Error("Failed to record trip", "trip", trip.ID, "err", err)
		}
	}
	return nil
}

func (e *Elevator) reject(err error) error {
	e.logger.Warn("Floor list rejected", "floor", e.state.CurrentFloor, "err", err)
	return err
}

func (e *Elevator) emitReport() {
	fmt.Fprintln(e.out, e.StatusReport())
}

func getDirection(dist int) types.MotorDirection {
	if dist > 0 {
		return types.MD_Up
	}
	if dist < 0 {
		return types.MD_Down
	}
	return types.MD_Stop
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
