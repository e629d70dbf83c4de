package sim

import (
	"math"
	"sort"

	"github.com/automoto/shapeshifter/shared/gamemath"
	"github.com/automoto/shapeshifter/shared/leveldata"
	"github.com/solarlune/resolv"
)

const (
	cellSize = 40

	tagPlatform = "platform"
	tagZone     = "morphzone"
)

// broadphase indexes static level geometry in a resolv.Space. Queries return
// candidate indices in level order; callers still run the exact
// gamemath.Intersects test on each candidate.
//
// resolv assigns an object to the cells covering [X, X+W-1], so both the
// stored geometry and the probe are padded by one unit on every side to keep
// sub-unit overlaps in a shared cell.
type broadphase struct {
	space   *resolv.Space
	probe   *resolv.Object
	originX float64
	originY float64
	scratch []int
	seen    map[int]bool
}

func newBroadphase(level *leveldata.Level, world World) *broadphase {
	minX, minY := 0.0, 0.0
	maxX, maxY := math.Max(world.Width, float64(level.Width)), math.Max(world.Height, float64(level.Height))
	grow := func(r gamemath.Rect) {
		minX = math.Min(minX, r.X)
		minY = math.Min(minY, r.Y)
		maxX = math.Max(maxX, r.Right())
		maxY = math.Max(maxY, r.Bottom())
	}
	for _, p := range level.Platforms {
		grow(p.Rect)
	}
	for _, z := range level.MorphZones {
		grow(z.Rect)
	}

	bp := &broadphase{
		originX: minX - cellSize,
		originY: minY - cellSize,
		seen:    make(map[int]bool),
	}
	width := int(math.Ceil(maxX-bp.originX)) + 2*cellSize
	height := int(math.Ceil(maxY-bp.originY)) + 2*cellSize
	bp.space = resolv.NewSpace(width, height, cellSize, cellSize)

	for i, p := range level.Platforms {
		bp.add(p.Rect, i, tagPlatform)
	}
	for i, z := range level.MorphZones {
		bp.add(z.Rect, i, tagZone)
	}

	bp.probe = resolv.NewObject(0, 0, 1, 1)
	bp.space.Add(bp.probe)
	return bp
}

func (bp *broadphase) add(r gamemath.Rect, index int, tag string) {
	obj := resolv.NewObject(r.X-bp.originX-1, r.Y-bp.originY-1, r.W+2, r.H+2, tag)
	obj.Data = index
	bp.space.Add(obj)
}

// query returns the indices of objects tagged tag whose cells overlap r,
// sorted ascending. The returned slice is reused by the next call.
func (bp *broadphase) query(r gamemath.Rect, tag string) []int {
	bp.probe.X = r.X - bp.originX - 1
	bp.probe.Y = r.Y - bp.originY - 1
	bp.probe.W = r.W + 2
	bp.probe.H = r.H + 2
	bp.probe.Update()

	bp.scratch = bp.scratch[:0]
	clear(bp.seen)

	check := bp.probe.Check(0, 0, tag)
	if check == nil {
		return bp.scratch
	}
	for _, obj := range check.Objects {
		index, ok := obj.Data.(int)
		if !ok || bp.seen[index] {
			continue
		}
		bp.seen[index] = true
		bp.scratch = append(bp.scratch, index)
	}
	sort.Ints(bp.scratch)
	return bp.scratch
}
