package config

import "image/color"

// TileKind is the visual kind of a platform tile. It only affects drawing.
type TileKind int

const (
	TileNone TileKind = iota
	TilePlatform
	TileGround
	TileWallLeft
	TileWallRight
	TileCeiling
)

// TileSymbols maps level text symbols to tile kinds. A space is empty.
var TileSymbols = map[rune]TileKind{
	' ': TileNone,
	'-': TilePlatform,
	'*': TileGround,
	'>': TileWallLeft,
	'<': TileWallRight,
	'^': TileCeiling,
}

// TileColors is the fill used for each tile kind.
var TileColors = map[TileKind]color.RGBA{
	TilePlatform:  Brown,
	TileGround:    DarkGreen,
	TileWallLeft:  Slate,
	TileWallRight: Slate,
	TileCeiling:   DarkSlate,
}

func (k TileKind) String() string {
	switch k {
	case TilePlatform:
		return "platform"
	case TileGround:
		return "ground"
	case TileWallLeft:
		return "wall_left"
	case TileWallRight:
		return "wall_right"
	case TileCeiling:
		return "ceiling"
	}
	return "none"
}
