package systems

import (
	cfg "github.com/automoto/shapeshifter/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates the keyboard/gamepad handler for the title screen.
// Confirm starts a run; Mute toggles sound and reports the new state.
// Confirm is ignored until it has been seen released, so the key that
// closed the previous scene does not start a new run.
func NewUpdateMenu(onStart func(), onMuteChanged func(muted bool)) ecs.System {
	armed := false
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		confirm := GetAction(input, cfg.ActionConfirm)
		if !confirm.Pressed {
			armed = true
		}

		if GetAction(input, cfg.ActionMute).JustPressed {
			ToggleMute()
			if onMuteChanged != nil {
				onMuteChanged(IsMuted())
			}
		}

		if armed && confirm.JustPressed {
			onStart()
		}
	}
}
