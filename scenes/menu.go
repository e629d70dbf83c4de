package scenes

import (
	"sync"

	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/shared/leveldata"
	"github.com/automoto/shapeshifter/systems"
	"github.com/automoto/shapeshifter/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       []*leveldata.Level
	menuUI       *ui.MenuUI
	once         sync.Once

	// startLevel is set by a menu action and consumed on the next update
	startLevel int
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, levels []*leveldata.Level) *MenuScene {
	return &MenuScene{sceneChanger: sc, levels: levels}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()

	if ms.startLevel > 0 {
		ms.sceneChanger.ChangeScene(NewGameScene(ms.sceneChanger, ms.levels, ms.startLevel))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Colors.Background)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	start := func() { ms.startLevel = 1 }
	ms.menuUI = ui.NewMenuUI(start, func() {
		systems.ToggleMute()
		ms.menuUI.SetMuted(systems.IsMuted())
	})
	ms.menuUI.SetMuted(systems.IsMuted())

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(start, ms.menuUI.SetMuted))
}
