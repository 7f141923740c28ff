package types

import "fmt"

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)

// String gives the word used in status reports. A zero-distance step reads "stationary".
func (d MotorDirection) String() string {
	switch d {
	case MD_Up:
		return "up"
	case MD_Down:
		return "down"
	default:
		return "stationary"
	}
}

// Verbosity controls how many status reports a traversal writes.
type Verbosity int

const (
	Silent    Verbosity = iota // no reports
	FinalOnly                  // one report after the last floor
	EveryStep                  // one report per step plus the final one
)

// OptFloor is a floor that may be unset. Floor 0 is a legitimate value, so
// absence is carried by Set rather than by a sentinel.
type OptFloor struct {
	Floor int
	Set   bool
}

func SomeFloor(floor int) OptFloor {
	return OptFloor{Floor: floor, Set: true}
}

func (f OptFloor) Get() (int, bool) {
	return f.Floor, f.Set
}

func (f OptFloor) String() string {
	if !f.Set {
		return "none"
	}
	return fmt.Sprintf("%d", f.Floor)
}

// ElevState represents the state of one elevator car.
type ElevState struct {
	StartFloor     int
	CurrentFloor   int
	BuildingHeight int
	Speed          float64
	Name           string
	BuildingName   string
	NextFloor      OptFloor
	FinalFloor     OptFloor
	PendingFloors  []int
	VisitedFloors  []int
	Odometer       int
	ElapsedTime    float64 // seconds
	Trips          int
}

// Trip summarises one completed traversal.
type Trip struct {
	ID       string  `cbor:"1,keyasint"`
	Elevator string  `cbor:"2,keyasint"`
	From     int     `cbor:"3,keyasint"`
	Floors   []int   `cbor:"4,keyasint"`
	Distance int     `cbor:"5,keyasint"`
	Duration float64 `cbor:"6,keyasint"` // seconds
}
