package leveldata

import (
	"errors"
	"fmt"

	"github.com/automoto/shapeshifter/shared/gamemath"
	"github.com/automoto/shapeshifter/shared/shapes"
)

var (
	ErrNegativeSize  = errors.New("negative size")
	ErrSpawnInHazard = errors.New("spawn inside hazard")
	ErrMissingExit   = errors.New("missing exit gate")
	ErrMissingSpawn  = errors.New("missing spawn point")
	ErrUnknownKind   = errors.New("unknown platform kind")
	ErrInvalidID     = errors.New("invalid level id")
	ErrDuplicateID   = errors.New("duplicate level id")
)

// Validate checks the level invariants and returns every violation joined
// into one error, or nil.
func (l *Level) Validate() error {
	var errs []error

	if l.ID <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidID, l.ID))
	}

	for i, p := range l.Platforms {
		if negative(p.Rect) {
			errs = append(errs, fmt.Errorf("platform %d: %w", i, ErrNegativeSize))
		}
		if p.Kind != Solid && p.Kind != Hazard {
			errs = append(errs, fmt.Errorf("platform %d: %w", i, ErrUnknownKind))
		}
		if p.Kind == Hazard && p.Rect.ContainsPoint(l.Spawn.X, l.Spawn.Y) {
			errs = append(errs, fmt.Errorf("platform %d at (%v, %v): %w", i, p.Rect.X, p.Rect.Y, ErrSpawnInHazard))
		}
	}

	for i, z := range l.MorphZones {
		if negative(z.Rect) {
			errs = append(errs, fmt.Errorf("morph zone %d: %w", i, ErrNegativeSize))
		}
		if !z.Shape.Valid() {
			errs = append(errs, fmt.Errorf("morph zone %d: %w %d", i, shapes.ErrUnknownShape, int(z.Shape)))
		}
	}

	if negative(l.Exit) {
		errs = append(errs, fmt.Errorf("exit: %w", ErrNegativeSize))
	}
	if !l.RequiredShape.Valid() {
		errs = append(errs, fmt.Errorf("required shape: %w %d", shapes.ErrUnknownShape, int(l.RequiredShape)))
	}

	return errors.Join(errs...)
}

func negative(r gamemath.Rect) bool {
	return r.W < 0 || r.H < 0
}
