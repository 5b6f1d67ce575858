package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer; every system and renderer runs on it.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width      int
	Height     int
	Title      string
	Background color.RGBA
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, in pixels per fixed step
	MoveSpeed float64
	JumpPower float64

	// Dimensions of the collision box and the frames drawn over it
	Width  float64
	Height float64

	// Spawn point in world pixels
	StartX float64
	StartY float64

	// Seconds each frame of the walk cycles stays on screen
	FrameDelay float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity        float64 // added to vertical speed every fixed step while airborne
	TicksPerSecond int
	FixedStep      float64 // seconds the movement constants are tuned for
}

// LevelConfig describes the tile grid and where levels live in the asset FS
type LevelConfig struct {
	TileWidth  int
	TileHeight int
	File       string
	TileLayer  string // Tiled layer holding the platform tiles
	SymbolProp string // Tiled tile property holding the level symbol

	// resolv spatial hash cell size
	CellSize int
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDFontSize   float64
	TitleFontSize float64
	HUDTextColor  color.RGBA
	HUDMargin     int
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Label        string
}

// DebugConfig toggles development overlays
type DebugConfig struct {
	ShowHUD   bool
	ShowBoxes bool // collision boxes
	BoxColor  color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Level LevelConfig
var UI UIConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Sky        = color.RGBA{R: 0xAF, G: 0xEE, B: 0xEE, A: 255} // #AFEEEE
	Brown      = color.RGBA{R: 0x8B, G: 0x5A, B: 0x2B, A: 255}
	DarkGreen  = color.RGBA{R: 0x2E, G: 0x6B, B: 0x2E, A: 255}
	Slate      = color.RGBA{R: 0x4A, G: 0x55, B: 0x68, A: 255}
	DarkSlate  = color.RGBA{R: 0x2F, G: 0x36, B: 0x44, A: 255}
	Charcoal   = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	TextShadow = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

func init() {
	C = &Config{
		Width:      1060,
		Height:     720,
		Title:      "Boltrunner",
		Background: Sky,
	}

	Player = PlayerConfig{
		MoveSpeed:  7,
		JumpPower:  10,
		Width:      93,
		Height:     128,
		StartX:     500,
		StartY:     1700,
		FrameDelay: 0.1,
	}

	Physics = PhysicsConfig{
		Gravity:        0.35,
		TicksPerSecond: 60,
		FixedStep:      1.0 / 60,
	}

	Level = LevelConfig{
		TileWidth:  60,
		TileHeight: 60,
		File:       "levels/level1.tmx",
		TileLayer:  "tiles",
		SymbolProp: "symbol",
		CellSize:   60,
	}

	UI = UIConfig{
		HUDFontSize:   14,
		TitleFontSize: 32,
		HUDTextColor:  Black,
		HUDMargin:     8,
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 140},
		TextColor:    White,
		Label:        "PAUSED",
	}

	Debug = DebugConfig{
		ShowHUD:  true,
		BoxColor: color.RGBA{R: 255, G: 0, B: 0, A: 200},
	}
}
