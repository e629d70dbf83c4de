package scenes

import (
	"log"
	"sync"

	"github.com/automoto/shapeshifter/components"
	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/shared/leveldata"
	"github.com/automoto/shapeshifter/shared/session"
	"github.com/automoto/shapeshifter/systems"
	"github.com/automoto/shapeshifter/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene plays the levels in order, showing the GameOver, LevelComplete
// and Victory overlays on top of the frozen level.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       []*leveldata.Level
	startLevel   int
	game         *donburi.Entry
	once         sync.Once
}

// NewGameScene creates a scene that starts on startLevel (1-based)
func NewGameScene(sc SceneChanger, levels []*leveldata.Level, startLevel int) *GameScene {
	return &GameScene{sceneChanger: sc, levels: levels, startLevel: startLevel}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if components.Session.Get(gs.game).ReturnToMenu {
		systems.CloseTuning(gs.ecs)
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.levels))
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Colors.Background)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused)
	gs.ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdatePause)
	gs.ecs.AddSystem(systems.UpdateSession)
	gs.ecs.AddSystem(systems.UpdateTuning)

	// Game systems wrapped with pause checks
	gs.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	gs.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))

	// World layer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawParticles)

	// Screen-space layer
	gs.ecs.AddRenderer(cfg.Foreground, systems.DrawHUD)
	gs.ecs.AddRenderer(cfg.Foreground, systems.DrawDebug)
	gs.ecs.AddRenderer(cfg.Foreground, systems.DrawOverlay)
	gs.ecs.AddRenderer(cfg.Foreground, systems.DrawPause)

	ctrl := session.New(len(gs.levels))
	systems.RegisterSessionHooks(gs.ecs, ctrl)
	if err := ctrl.Select(gs.startLevel); err != nil {
		log.Printf("Warning: %v, starting on level 1", err)
	}
	gs.game = factory.CreateGame(gs.ecs, ctrl, gs.levels)

	if cfg.Debug.Enabled && cfg.Debug.TuningPath != "" {
		factory.CreateTuning(gs.ecs, cfg.Debug.TuningPath)
	}

	if _, err := ctrl.Fire(session.Start); err != nil {
		log.Printf("Warning: %v", err)
	}
}
