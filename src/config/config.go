package config

import "time"

const (
	MaxCapacity      = 8
	MaxFloors        = 10
	NumCars          = 3
	MovementDelay    = 1 * time.Second
	DoorOpenDuration = 2 * time.Second
	DoorCloseDelay   = DoorOpenDuration / 2
	EventBuffer      = 256
	LogLevel         = "info"
)

// Config holds the building and timing policy for one dispatcher.
type Config struct {
	Cars           int           `yaml:"cars" json:"cars"`
	MaxFloors      int           `yaml:"max_floors" json:"max_floors"`
	MaxCapacity    int           `yaml:"max_capacity" json:"max_capacity"`
	MovementDelay  time.Duration `yaml:"movement_delay" json:"movement_delay"`
	DoorDwell      time.Duration `yaml:"door_dwell" json:"door_dwell"`
	DoorCloseDelay time.Duration `yaml:"door_close_delay" json:"door_close_delay"`
	EventBuffer    int           `yaml:"event_buffer" json:"event_buffer"`
	LogLevel       string        `yaml:"log_level" json:"log_level"`
}

func Default() Config {
	return Config{
		Cars:           NumCars,
		MaxFloors:      MaxFloors,
		MaxCapacity:    MaxCapacity,
		MovementDelay:  MovementDelay,
		DoorDwell:      DoorOpenDuration,
		DoorCloseDelay: DoorCloseDelay,
		EventBuffer:    EventBuffer,
		LogLevel:       LogLevel,
	}
}

// ValidFloor reports whether floor lies in [1, MaxFloors].
func (c Config) ValidFloor(floor int) bool {
	return floor >= 1 && floor <= c.MaxFloors
}
