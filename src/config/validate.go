package config

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaSource string

// Validate checks c against the embedded CUE schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	value := ctx.Encode(map[string]any{
		"cars":                c.Cars,
		"max_floors":          c.MaxFloors,
		"max_capacity":        c.MaxCapacity,
		"movement_delay_ms":   c.MovementDelay.Milliseconds(),
		"door_dwell_ms":       c.DoorDwell.Milliseconds(),
		"door_close_delay_ms": c.DoorCloseDelay.Milliseconds(),
		"event_buffer":        c.EventBuffer,
		"log_level":           c.LogLevel,
	})
	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
