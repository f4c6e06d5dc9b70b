package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"elevdispatch/src/types"
)

// Scenario is a scripted sequence of requests fed to a fresh fleet.
//
//	name: morning rush
//	cars: 2
//	steps:
//	  - hall: {floor: 5, direction: up}
//	  - wait: 3s
//	  - cab: {car: 1, floor: 9}
type Scenario struct {
	Name      string `yaml:"name"`
	Cars      int    `yaml:"cars,omitempty"`
	MaxFloors int    `yaml:"max_floors,omitempty"`
	Steps     []Step `yaml:"steps"`
}

// Step holds exactly one action.
type Step struct {
	Hall      *types.HallCall `yaml:"hall,omitempty"`
	Cab       *CabCall        `yaml:"cab,omitempty"`
	Occupancy *Occupancy      `yaml:"occupancy,omitempty"`
	Wait      time.Duration   `yaml:"wait,omitempty"`
}

// CabCall is a destination button pressed inside a car.
type CabCall struct {
	Car   int `yaml:"car"`
	Floor int `yaml:"floor"`
}

type Occupancy struct {
	Car   int `yaml:"car"`
	Count int `yaml:"count"`
}

var errBadStep = errors.New("step must set exactly one of hall, cab, occupancy, wait")

// LoadScenario reads and checks the shape of a scenario file. Floor and
// direction values are left to the dispatcher so rejected requests show up
// in the run like any other.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	for i, step := range sc.Steps {
		if step.actions() != 1 {
			return Scenario{}, fmt.Errorf("step %d: %w", i+1, errBadStep)
		}
		if step.Wait < 0 {
			return Scenario{}, fmt.Errorf("step %d: negative wait %s", i+1, step.Wait)
		}
	}
	return sc, nil
}

func (s Step) actions() int {
	n := 0
	if s.Hall != nil {
		n++
	}
	if s.Cab != nil {
		n++
	}
	if s.Occupancy != nil {
		n++
	}
	if s.Wait != 0 {
		n++
	}
	return n
}

func (s Step) String() string {
	switch {
	case s.Hall != nil:
		return s.Hall.String()
	case s.Cab != nil:
		return fmt.Sprintf("Cab(car=%d, floor=%d)", s.Cab.Car, s.Cab.Floor)
	case s.Occupancy != nil:
		return fmt.Sprintf("Occupancy(car=%d, count=%d)", s.Occupancy.Car, s.Occupancy.Count)
	}
	return fmt.Sprintf("Wait(%s)", s.Wait)
}
