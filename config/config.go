package config

import (
	"image/color"

	"github.com/automoto/shapeshifter/shared/sim"
	"golang.org/x/image/colornames"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	// LevelsDir is the directory inside the embedded assets holding TMX files
	LevelsDir string
}

// WorldBounds returns the playfield the simulation clamps against.
func (c *Config) WorldBounds() sim.World {
	return sim.World{Width: float64(c.Width), Height: float64(c.Height)}
}

// ColorConfig is the game palette
type ColorConfig struct {
	Background  color.RGBA
	Label       color.RGBA
	Platform    color.RGBA
	PlatformTop color.RGBA
	Hazard      color.RGBA
	Eye         color.RGBA
	Text        color.RGBA
	TextDim     color.RGBA
	Overlay     color.RGBA
}

// RenderConfig contains level and player drawing measurements
type RenderConfig struct {
	PlatformTopHeight float64
	SpikeWidth        float64
	ZoneInset         float64
	ZoneInnerAlpha    float64
	ZoneDash          float64
	ZonePulse         float64 // max outline growth in pixels
	ZonePulseSeconds  float32 // one pulse cycle
	ExitLineWidth     float64
	ExitFillAlpha     float64
	ExitLabel         string
	LabelSize         float64
	EyeSize           float64
	EyeSizeCenter     float64
}

// ParticleRecipe is how many particles an event spawns and their color
type ParticleRecipe struct {
	Count int
	Color color.RGBA
}

// ParticleConfig maps game events to particle bursts
type ParticleConfig struct {
	Jump        ParticleRecipe
	HazardDeath ParticleRecipe
	Win         ParticleRecipe
	// Morph uses the target shape's color
	MorphCount int
}

// OverlayText is the copy shown on a full-screen state
type OverlayText struct {
	Title      string
	Message    string
	Button     string
	TitleColor color.RGBA
}

// OverlayConfig contains menu and end-of-attempt screen configuration
type OverlayConfig struct {
	Menu          OverlayText
	GameOver      OverlayText
	LevelComplete OverlayText
	Victory       OverlayText
	FadeSeconds   float32
	TitleY        float64
	MessageY      float64
	ButtonY       float64
	ButtonWidth   float64
	ButtonHeight  float64
	ButtonColor   color.RGBA
	MessageWidth  int // characters per wrapped line
}

// HUDConfig contains the in-game header and footer
type HUDConfig struct {
	Margin      float64
	FormPrefix  string
	MutedLabel  string
	SoundLabel  string
	PausedTitle string
	PausedHint  string
	Footer      []string
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	DeathIntensity float64 // pixels
	DeathDuration  int     // frames
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	LerpSpeed  float64 // how fast to return to normal scale
}

// PersistenceConfig names the settings slot
type PersistenceConfig struct {
	AppName     string
	SettingsKey string
}

// Global configuration instances
var C *Config
var Physics sim.Params
var Colors ColorConfig
var Render RenderConfig
var Particles ParticleConfig
var Overlay OverlayConfig
var HUD HUDConfig
var Pause PauseConfig
var ScreenShake ScreenShakeConfig
var SquashStretch SquashStretchConfig
var Persistence PersistenceConfig

// Shared RGBA color constants
var (
	White  = colornames.White
	Black  = colornames.Black
	Red    = colornames.Red
	Slate  = color.RGBA{R: 100, G: 116, B: 139, A: 255}
	Slate4 = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	Navy   = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	Red500 = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	Green  = color.RGBA{R: 74, G: 222, B: 128, A: 255}
	Yellow = color.RGBA{R: 250, G: 204, B: 21, A: 255}
	Cyan   = color.RGBA{R: 34, G: 211, B: 238, A: 255}
	Indigo = color.RGBA{R: 99, G: 102, B: 241, A: 255}
	Shade  = color.RGBA{R: 15, G: 23, B: 42, A: 230}
)

func init() {
	C = &Config{
		Width:     800,
		Height:    600,
		Title:     "ShapeShifter",
		LevelsDir: "levels",
	}

	Physics = sim.DefaultParams()

	Colors = ColorConfig{
		Background:  Navy,
		Label:       color.RGBA{R: 255, G: 255, B: 255, A: 26},
		Platform:    Slate,
		PlatformTop: Slate4,
		Hazard:      Red500,
		Eye:         Black,
		Text:        White,
		TextDim:     Slate4,
		Overlay:     Shade,
	}

	Render = RenderConfig{
		PlatformTopHeight: 4,
		SpikeWidth:        10,
		ZoneInset:         10,
		ZoneInnerAlpha:    0.5,
		ZoneDash:          10,
		ZonePulse:         2,
		ZonePulseSeconds:  1.0,
		ExitLineWidth:     4,
		ExitFillAlpha:     0.2,
		ExitLabel:         "EXIT",
		LabelSize:         20,
		EyeSize:           5,
		EyeSizeCenter:     4,
	}

	Particles = ParticleConfig{
		Jump:        ParticleRecipe{Count: 5, Color: White},
		HazardDeath: ParticleRecipe{Count: 30, Color: Red},
		Win:         ParticleRecipe{Count: 50, Color: White},
		MorphCount:  20,
	}

	Overlay = OverlayConfig{
		Menu: OverlayText{
			Title:      "ShapeShifter",
			Message:    "Use Arrow Keys to move and jump. Find morph zones to change shape and pass the specific exit gate.",
			Button:     "START GAME",
			TitleColor: Cyan,
		},
		GameOver: OverlayText{
			Title:      "GAME OVER",
			Message:    "The spikes were too sharp.",
			Button:     "TRY AGAIN",
			TitleColor: Red500,
		},
		LevelComplete: OverlayText{
			Title:      "CLEARED!",
			Message:    "Form matched successfully.",
			Button:     "NEXT LEVEL",
			TitleColor: Green,
		},
		Victory: OverlayText{
			Title:      "YOU WIN!",
			Message:    "You have mastered the art of shape shifting and conquered all obstacles.",
			Button:     "PLAY AGAIN",
			TitleColor: Yellow,
		},
		FadeSeconds:  0.3,
		TitleY:       220,
		MessageY:     270,
		ButtonY:      340,
		ButtonWidth:  200,
		ButtonHeight: 44,
		ButtonColor:  Indigo,
		MessageWidth: 48,
	}

	HUD = HUDConfig{
		Margin:      16,
		FormPrefix:  "Current Form:",
		MutedLabel:  "SOUND: OFF (M)",
		SoundLabel:  "SOUND: ON (M)",
		PausedTitle: "PAUSED",
		PausedHint:  "Press ESC or P to resume",
		Footer:      []string{"MOVE: Arrows / WASD", "JUMP: Space / Up", "RESET: R"},
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 160},
		TextColor:    White,
	}

	ScreenShake = ScreenShakeConfig{
		DeathIntensity: 6.0,
		DeathDuration:  12,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.8,
		JumpScaleY: 1.25,
		LandScaleX: 1.2,
		LandScaleY: 0.8,
		LerpSpeed:  0.15,
	}

	Persistence = PersistenceConfig{
		AppName:     "shapeshifter",
		SettingsKey: "settings",
	}
}
