package tags

import "github.com/yohamta/donburi"

var (
	Game = donburi.NewTag().SetName("Game")
)
