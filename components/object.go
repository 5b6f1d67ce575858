package components

import (
	"github.com/automoto/boltrunner/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Rect is the object's box as a gamemath rectangle.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// MoveTo places the object at r's corner and refreshes its spatial hash cells.
func (o ObjectData) MoveTo(r gamemath.Rect) {
	o.X, o.Y = r.X, r.Y
	o.Update()
}
