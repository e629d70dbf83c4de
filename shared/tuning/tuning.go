// Package tuning loads physics constants from YAML so they can be adjusted
// without rebuilding, and watches the file for edits in debug builds.
package tuning

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/shapeshifter/shared/sim"
	"gopkg.in/yaml.v3"
)

var (
	ErrFriction  = errors.New("friction must be in (0, 1]")
	ErrMaxSpeed  = errors.New("max_speed must be positive")
	ErrJumpForce = errors.New("jump_force must be negative")
	ErrGravity   = errors.New("gravity must not be negative")
	ErrMoveSpeed = errors.New("move_speed must not be negative")
)

// file mirrors the YAML document. Absent keys stay nil and keep defaults.
type file struct {
	Gravity   *float64 `yaml:"gravity"`
	Friction  *float64 `yaml:"friction"`
	MoveSpeed *float64 `yaml:"move_speed"`
	MaxSpeed  *float64 `yaml:"max_speed"`
	JumpForce *float64 `yaml:"jump_force"`
}

// Load reads path and overlays it on sim.DefaultParams.
func Load(path string) (sim.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.DefaultParams(), fmt.Errorf("tuning: load %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return p, fmt.Errorf("tuning: %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a tuning document. On error the defaults are returned
// alongside it.
func Parse(data []byte) (sim.Params, error) {
	def := sim.DefaultParams()

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return def, fmt.Errorf("unmarshal: %w", err)
	}

	p := def
	set(&p.Gravity, f.Gravity)
	set(&p.Friction, f.Friction)
	set(&p.MoveSpeed, f.MoveSpeed)
	set(&p.MaxSpeed, f.MaxSpeed)
	set(&p.JumpForce, f.JumpForce)

	if err := Validate(p); err != nil {
		return def, err
	}
	return p, nil
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// Validate reports every constant that would break the step.
func Validate(p sim.Params) error {
	var errs []error
	if p.Friction <= 0 || p.Friction > 1 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrFriction, p.Friction))
	}
	if p.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrMaxSpeed, p.MaxSpeed))
	}
	if p.JumpForce >= 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrJumpForce, p.JumpForce))
	}
	if p.Gravity < 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrGravity, p.Gravity))
	}
	if p.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrMoveSpeed, p.MoveSpeed))
	}
	return errors.Join(errs...)
}
