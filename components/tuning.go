package components

import (
	"github.com/automoto/shapeshifter/shared/tuning"
	"github.com/yohamta/donburi"
)

// TuningData tracks the watched physics file in debug runs
type TuningData struct {
	Path    string
	Watcher *tuning.Watcher
}

var Tuning = donburi.NewComponentType[TuningData]()
