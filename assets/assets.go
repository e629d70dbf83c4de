package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/shared/leveldata"
	"github.com/automoto/shapeshifter/shared/sim"
	"github.com/automoto/shapeshifter/shared/tuning"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed tuning.yaml
	defaultTuning []byte
)

// LoadLevels reads every embedded TMX level, ordered by id.
func LoadLevels() ([]*leveldata.Level, error) {
	levels, err := leveldata.LoadAll(assetFS, config.C.LevelsDir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return levels, nil
}

// DefaultTuning returns the physics constants shipped with the game.
func DefaultTuning() (sim.Params, error) {
	p, err := tuning.Parse(defaultTuning)
	if err != nil {
		return p, fmt.Errorf("assets: default tuning: %w", err)
	}
	return p, nil
}
