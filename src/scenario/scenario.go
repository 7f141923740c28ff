// Package scenario loads elevator rides from YAML.
//
//	elevator:
//	  name: The Great Glass Elevator
//	  building: The Chocolate Factory
//	  start: 0
//	  height: 100
//	  speed: 0.1
//	verbosity: 2
//	rides:
//	  - [1, 20, 3, 9, 100]
//	  - [0, 11]
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"elevride/src/config"
	"elevride/src/elev"
	"elevride/src/types"
)

type ElevatorConfig struct {
	Name     string   `yaml:"name"`
	Building string   `yaml:"building"`
	Start    int      `yaml:"start"`
	Height   int      `yaml:"height"`
	Speed    *float64 `yaml:"speed"`
}

type Scenario struct {
	Elevator  ElevatorConfig `yaml:"elevator"`
	Verbosity *int           `yaml:"verbosity"`
	// Rides are kept as numbers so integer-valued entries like 5.0 reach the elevator's own check.
	Rides [][]float64 `yaml:"rides"`
}

// Default is the demo ride through the chocolate factory.
func Default() *Scenario {
	verbosity := config.DefaultVerbosity
	speed := config.DefaultSpeed
	return &Scenario{
		Elevator: ElevatorConfig{
			Name:     "The Great Glass Elevator",
			Building: "The Chocolate Factory",
			Start:    0,
			Height:   100,
			Speed:    &speed,
		},
		Verbosity: &verbosity,
		Rides: [][]float64{
			{1, 20, 3, 9, 100},
			{0, 11},
		},
	}
}

func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if s.Elevator.Name == "" {
		s.Elevator.Name = config.DefaultName
	}
	if s.Elevator.Building == "" {
		s.Elevator.Building = config.DefaultBuildingName
	}
	// An explicit speed, zero included, is left for elev.New to judge.
	if s.Elevator.Speed == nil {
		speed := float64(config.DefaultSpeed)
		s.Elevator.Speed = &speed
	}
	return &s, nil
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func (s *Scenario) VerbosityLevel() types.Verbosity {
	if s.Verbosity == nil {
		return types.Verbosity(config.DefaultVerbosity)
	}
	return types.Verbosity(*s.Verbosity)
}

// NewElevator builds the configured elevator. Extra options are applied after the scenario's own.
func (s *Scenario) NewElevator(opts ...elev.Option) (*elev.Elevator, error) {
	base := []elev.Option{
		elev.WithName(s.Elevator.Name),
		elev.WithBuildingName(s.Elevator.Building),
	}
	if s.Elevator.Speed != nil {
		base = append(base, elev.WithSpeed(*s.Elevator.Speed))
	}
	return elev.New(s.Elevator.Start, s.Elevator.Height, append(base, opts...)...)
}

// Run rides every configured floor list in order and stops at the first rejected one.
func (s *Scenario) Run(e *elev.Elevator) error {
	for i, ride := range s.Rides {
		if err := e.TravelThroughFloats(ride, s.VerbosityLevel()); err != nil {
			return fmt.Errorf("ride %d: %w", i+1, err)
		}
	}
	return nil
}
