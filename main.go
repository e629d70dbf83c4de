package main

import (
	"image"
	"log"

	"github.com/automoto/shapeshifter/assets"
	"github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/fonts"
	"github.com/automoto/shapeshifter/scenes"
	"github.com/automoto/shapeshifter/shared/leveldata"
	"github.com/automoto/shapeshifter/shared/tuning"
	"github.com/automoto/shapeshifter/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levels []*leveldata.Level) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if level := config.Debug.StartLevel; level > 0 {
		g.scene = scenes.NewGameScene(g, levels, level)
	} else {
		g.scene = scenes.NewMenuScene(g, levels)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	config.LoadEnv()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	levels, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	params, err := assets.DefaultTuning()
	if err != nil {
		log.Printf("Warning: Embedded tuning is invalid, using built-in physics: %v", err)
	}
	if path := config.Debug.TuningPath; path != "" {
		if p, err := tuning.Load(path); err != nil {
			log.Printf("Warning: Could not load tuning %s: %v", path, err)
		} else {
			params = p
		}
	}
	config.Physics = params

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(levels)); err != nil {
		log.Fatal(err)
	}
}
