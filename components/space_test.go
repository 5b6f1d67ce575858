package components

import (
	"testing"

	"github.com/automoto/boltrunner/shared/gamemath"
	"github.com/automoto/boltrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// spawnPlatforms adds rects to space as solid platforms, indexed in order.
func spawnPlatforms(w donburi.World, space *resolv.Space, rects []gamemath.Rect) {
	for i, r := range rects {
		e := w.Entry(w.Create(Platform, Object))
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
		obj.Data = e
		Object.SetValue(e, ObjectData{Object: obj})
		Platform.SetValue(e, PlatformData{Index: i})
		space.Add(obj)
	}
}

func TestSpaceSolidsFindsOverlaps(t *testing.T) {
	rects := []gamemath.Rect{
		{X: 0, Y: 0, W: 60, H: 60},
		{X: 60, Y: 0, W: 60, H: 60},
		{X: 300, Y: 300, W: 60, H: 60},
		{X: 0, Y: 540, W: 600, H: 60},
	}
	space := resolv.NewSpace(600, 600, 60, 60)
	spawnPlatforms(donburi.NewWorld(), space, rects)

	solids := NewSpaceSolids(space)
	defer solids.Close()

	tests := []struct {
		name string
		area gamemath.Rect
	}{
		{"top left corner", gamemath.Rect{X: 40, Y: 10, W: 30, H: 30}},
		{"middle", gamemath.Rect{X: 290.5, Y: 310, W: 20, H: 20}},
		{"floor", gamemath.Rect{X: 100, Y: 500, W: 93, H: 41.2}},
		{"open air", gamemath.Rect{X: 150, Y: 150, W: 20, H: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := solids.Solids(tt.area)
			for _, r := range rects {
				if tt.area.Overlaps(r) {
					assert.Contains(t, got, r)
				}
			}
		})
	}
}

func TestSpaceSolidsLevelOrder(t *testing.T) {
	rects := []gamemath.Rect{
		{X: 60, Y: 60, W: 60, H: 60},
		{X: 0, Y: 60, W: 60, H: 60},
		{X: 0, Y: 0, W: 60, H: 60},
	}
	space := resolv.NewSpace(240, 240, 60, 60)
	spawnPlatforms(donburi.NewWorld(), space, rects)
	solids := NewSpaceSolids(space)

	got := solids.Solids(gamemath.Rect{X: 30, Y: 30, W: 60, H: 60})
	require.Len(t, got, 3)
	assert.Equal(t, rects, got)

	// a body resolved through the space ends where a full scan puts it
	a := gamemath.Body{Rect: gamemath.Rect{X: 10, Y: 10, W: 40, H: 40}, VX: 5, VY: 7}
	b := a
	a.Resolve(0, a.VY, solids.Solids(a.Rect))
	b.Resolve(0, b.VY, gamemath.StaticWorld(rects).Solids(b.Rect))
	assert.Equal(t, b, a)

	solids.Close()
	for _, o := range space.Objects() {
		assert.False(t, o.HasTags(tags.ResolvProbe))
	}
}
