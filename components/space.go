package components

import (
	"sort"

	"github.com/automoto/boltrunner/shared/gamemath"
	"github.com/automoto/boltrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var Space = donburi.NewComponentType[resolv.Space]()

// SpaceSolids finds collision candidates through the resolv spatial hash.
// Results come back in platform index order so resolution matches a scan of
// the whole level.
type SpaceSolids struct {
	space *resolv.Space
	probe *resolv.Object
	found []*resolv.Object
	rects []gamemath.Rect
}

func NewSpaceSolids(space *resolv.Space) *SpaceSolids {
	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(probe)
	return &SpaceSolids{space: space, probe: probe}
}

func (s *SpaceSolids) Solids(area gamemath.Rect) []gamemath.Rect {
	// cells are picked by rounding, so look one pixel wider
	q := area.Grow(1)
	s.probe.X, s.probe.Y, s.probe.W, s.probe.H = q.X, q.Y, q.W, q.H
	s.probe.Update()

	s.found = s.found[:0]
	s.rects = s.rects[:0]
	if c := s.probe.Check(0, 0, tags.ResolvSolid); c != nil {
		s.found = append(s.found, c.Objects...)
	}
	sort.SliceStable(s.found, func(i, j int) bool {
		return platformIndex(s.found[i]) < platformIndex(s.found[j])
	})
	for _, o := range s.found {
		s.rects = append(s.rects, gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H})
	}
	return s.rects
}

// Close takes the probe out of the space.
func (s *SpaceSolids) Close() {
	s.space.Remove(s.probe)
}

func platformIndex(o *resolv.Object) int {
	if e, ok := o.Data.(*donburi.Entry); ok && e.Valid() && e.HasComponent(Platform) {
		return Platform.Get(e).Index
	}
	return 0
}
