package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/shapeshifter/components"
	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/fonts"
	"github.com/automoto/shapeshifter/shared/gamemath"
	"github.com/automoto/shapeshifter/shared/leveldata"
	"github.com/automoto/shapeshifter/shared/shapes"
	"github.com/automoto/shapeshifter/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteSubImage *ebiten.Image

	triangleOp = &ebiten.DrawTrianglesOptions{AntiAlias: true}
	vertices   []ebiten.Vertex
	indices    []uint16
)

// gameEntry returns the entity holding the session and simulation.
func gameEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	entry, ok := components.Simulation.First(e.World)
	if !ok || components.Simulation.Get(entry).Sim == nil {
		return nil, false
	}
	return entry, true
}

// DrawLevel renders the background, labels, platforms, morph zones and exit.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	s := components.Simulation.Get(entry).Sim
	level := s.Level()
	ox, oy := shakeOffset(entry)

	labelFace := fonts.Label.Get()
	for _, l := range level.Labels {
		text.Draw(screen, l.Text, labelFace, int(l.X+ox), int(l.Y+oy), cfg.Colors.Label)
	}

	for _, p := range level.Platforms {
		r := offset(p.Rect, ox, oy)
		switch p.Kind {
		case leveldata.Solid:
			fillRect(screen, r, cfg.Colors.Platform)
			fillRect(screen, gamemath.NewRect(r.X, r.Y, r.W, cfg.Render.PlatformTopHeight), cfg.Colors.PlatformTop)
		case leveldata.Hazard:
			drawSpikes(screen, r, cfg.Colors.Hazard)
		}
	}

	pulse := 0.0
	if overlay, ok := components.Overlay.First(e.World); ok {
		pulse = float64(components.Overlay.Get(overlay).PulseValue) * cfg.Render.ZonePulse
	}
	for _, z := range level.MorphZones {
		drawMorphZone(screen, offset(z.Rect, ox, oy), shapes.ProfileOf(z.Shape).Color, pulse)
	}

	drawExit(screen, offset(level.Exit, ox, oy), level.RequiredShape, s.Player().Shape)
}

func drawSpikes(screen *ebiten.Image, r gamemath.Rect, c color.RGBA) {
	w := cfg.Render.SpikeWidth
	count := int(math.Ceil(r.W / w))
	var path vector.Path
	for i := 0; i < count; i++ {
		x := r.X + float64(i)*w
		path.MoveTo(float32(x), float32(r.Bottom()))
		path.LineTo(float32(x+w/2), float32(r.Y))
		path.LineTo(float32(x+w), float32(r.Bottom()))
		path.Close()
	}
	fillPath(screen, &path, c)
}

func drawMorphZone(screen *ebiten.Image, r gamemath.Rect, c color.RGBA, pulse float64) {
	outline := gamemath.NewRect(r.X-pulse, r.Y-pulse, r.W+pulse*2, r.H+pulse*2)
	strokeDashedRect(screen, outline, 2, cfg.Render.ZoneDash, c)

	in := cfg.Render.ZoneInset
	inner := gamemath.NewRect(r.X+in, r.Y+in, r.W-in*2, r.H-in*2)
	if inner.W > 0 && inner.H > 0 {
		fillRect(screen, inner, fade(c, cfg.Render.ZoneInnerAlpha))
	}
}

func drawExit(screen *ebiten.Image, r gamemath.Rect, required, current shapes.Shape) {
	c := shapes.ProfileOf(required).Color
	if current == required {
		fillRect(screen, r, fade(c, cfg.Render.ExitFillAlpha))
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		float32(cfg.Render.ExitLineWidth), c, false)
	text.Draw(screen, cfg.Render.ExitLabel, fonts.Small.Get(), int(r.X+15), int(r.Y-10), cfg.Colors.Text)
}

// DrawPlayer renders the player as its current shape with eyes that follow
// the direction of travel.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	p := components.Simulation.Get(entry).Sim.Player()
	ox, oy := shakeOffset(entry)
	sx, sy := squashScale(entry)

	// Scale around the bottom center so the feet stay on the ground
	w, h := p.W*sx, p.H*sy
	r := gamemath.NewRect(p.X+ox+(p.W-w)/2, p.Y+oy+p.H-h, w, h)
	c := shapes.ProfileOf(p.Shape).Color

	switch p.Shape {
	case shapes.Circle:
		cx, cy := r.Center()
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r.W/2), c, true)
	case shapes.Triangle:
		var path vector.Path
		path.MoveTo(float32(r.X+r.W/2), float32(r.Y))
		path.LineTo(float32(r.Right()), float32(r.Bottom()))
		path.LineTo(float32(r.X), float32(r.Bottom()))
		path.Close()
		fillPath(screen, &path, c)
	default:
		fillRect(screen, r, c)
	}

	drawEyes(screen, r, p)
}

func drawEyes(screen *ebiten.Image, r gamemath.Rect, p sim.Player) {
	size := cfg.Render.EyeSize
	switch {
	case p.VX > 0:
		fillRect(screen, gamemath.NewRect(r.Right()-15, r.Y+10, size, size), cfg.Colors.Eye)
	case p.VX < 0:
		fillRect(screen, gamemath.NewRect(r.X+10, r.Y+10, size, size), cfg.Colors.Eye)
	default:
		size = cfg.Render.EyeSizeCenter
		mid := r.X + r.W/2
		fillRect(screen, gamemath.NewRect(mid-5, r.Y+10, size, size), cfg.Colors.Eye)
		fillRect(screen, gamemath.NewRect(mid+5, r.Y+10, size, size), cfg.Colors.Eye)
	}
}

// DrawParticles renders live particles as circles fading with their life.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Particles.First(e.World)
	if !ok {
		return
	}
	ox, oy := shakeOffset(entry)
	for _, p := range components.Particles.Get(entry).Emitter.Particles() {
		vector.DrawFilledCircle(screen,
			float32(p.X+ox), float32(p.Y+oy), float32(p.Size),
			fade(p.Color, p.Life), true)
	}
}

func offset(r gamemath.Rect, ox, oy float64) gamemath.Rect {
	r.X += ox
	r.Y += oy
	return r
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// strokeDashedRect outlines r with dashes of period dash (half drawn, half gap).
func strokeDashedRect(screen *ebiten.Image, r gamemath.Rect, width, dash float64, c color.Color) {
	corners := [5][2]float64{
		{r.X, r.Y}, {r.Right(), r.Y}, {r.Right(), r.Bottom()}, {r.X, r.Bottom()}, {r.X, r.Y},
	}
	on := dash / 2
	for i := 0; i < 4; i++ {
		x0, y0 := corners[i][0], corners[i][1]
		x1, y1 := corners[i+1][0], corners[i+1][1]
		length := math.Hypot(x1-x0, y1-y0)
		if length == 0 {
			continue
		}
		dx, dy := (x1-x0)/length, (y1-y0)/length
		for d := 0.0; d < length; d += dash {
			end := math.Min(d+on, length)
			vector.StrokeLine(screen,
				float32(x0+dx*d), float32(y0+dy*d),
				float32(x0+dx*end), float32(y0+dy*end),
				float32(width), c, false)
		}
	}
}

// fillPath fills path with a solid color using the shared white texture.
func fillPath(screen *ebiten.Image, path *vector.Path, c color.RGBA) {
	if whiteSubImage == nil {
		white := ebiten.NewImage(3, 3)
		white.Fill(color.White)
		whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	vertices, indices = path.AppendVerticesAndIndicesForFilling(vertices[:0], indices[:0]) //nolint:staticcheck // TODO: migrate to vector.FillPath
	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = r
		vertices[i].ColorG = g
		vertices[i].ColorB = b
		vertices[i].ColorA = a
	}
	screen.DrawTriangles(vertices, indices, whiteSubImage, triangleOp)
}

// fade scales a premultiplied color by alpha in [0, 1].
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
