package assets

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/automoto/boltrunner/config"
	"github.com/lafriks/go-tiled"
)

// Level is a parsed tile grid. Tiles are listed row by row, left to right.
type Level struct {
	Name       string
	Rows       []string
	Tiles      []Tile
	TileWidth  int
	TileHeight int
	Width      int // pixels
	Height     int // pixels
}

// Tile is one solid cell of the level.
type Tile struct {
	X, Y, Width, Height float64
	Col, Row            int
	Kind                config.TileKind
}

// ParseLevel turns rows of tile symbols into a level. Every row must have the
// same number of symbols and every symbol must be known.
func ParseLevel(name string, rows []string, tileW, tileH int) (*Level, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("level %s has no rows", name)
	}
	if tileW <= 0 || tileH <= 0 {
		return nil, fmt.Errorf("level %s has invalid tile size %dx%d", name, tileW, tileH)
	}

	cols := utf8.RuneCountInString(rows[0])
	level := &Level{
		Name:       name,
		Rows:       append([]string(nil), rows...),
		TileWidth:  tileW,
		TileHeight: tileH,
		Width:      cols * tileW,
		Height:     len(rows) * tileH,
	}

	for r, row := range rows {
		if n := utf8.RuneCountInString(row); n != cols {
			return nil, fmt.Errorf("level %s row %d has %d columns, expected %d", name, r, n, cols)
		}
		c := 0
		for _, sym := range row {
			kind, ok := config.TileSymbols[sym]
			if !ok {
				return nil, fmt.Errorf("level %s row %d column %d: unknown symbol %q", name, r, c, sym)
			}
			if kind != config.TileNone {
				level.Tiles = append(level.Tiles, Tile{
					X:      float64(c * tileW),
					Y:      float64(r * tileH),
					Width:  float64(tileW),
					Height: float64(tileH),
					Col:    c,
					Row:    r,
					Kind:   kind,
				})
			}
			c++
		}
	}
	return level, nil
}

// LoadTextLevel reads a plain text level, one row per line.
func LoadTextLevel(fsys fs.FS, levelPath string, tileW, tileH int) (*Level, error) {
	data, err := fs.ReadFile(fsys, levelPath)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", levelPath, err)
	}

	var rows []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read level %s: %w", levelPath, err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return ParseLevel(levelPath, rows, tileW, tileH)
}

// LoadTiledLevel reads a Tiled map. Each tileset tile names its level symbol
// in the symbolProp property; tiles of layerName are turned into rows.
func LoadTiledLevel(fsys fs.FS, levelPath, layerName, symbolProp string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == layerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("level %s has no %q tile layer", levelPath, layerName)
	}

	rows := make([]string, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		var sb strings.Builder
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				sb.WriteRune(' ')
				continue
			}
			tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
			if err != nil {
				return nil, fmt.Errorf("level %s tile %d,%d: %w", levelPath, x, y, err)
			}
			symbol := tilesetTile.Properties.GetString(symbolProp)
			if utf8.RuneCountInString(symbol) != 1 {
				return nil, fmt.Errorf("level %s tile %d,%d: %s property %q is not one symbol", levelPath, x, y, symbolProp, symbol)
			}
			sb.WriteString(symbol)
		}
		rows[y] = sb.String()
	}

	return ParseLevel(levelPath, rows, levelMap.TileWidth, levelMap.TileHeight)
}

// LoadLevel picks the loader from the file extension.
func LoadLevel(fsys fs.FS, levelPath string) (*Level, error) {
	switch path.Ext(levelPath) {
	case ".tmx":
		return LoadTiledLevel(fsys, levelPath, config.Level.TileLayer, config.Level.SymbolProp)
	case ".txt":
		return LoadTextLevel(fsys, levelPath, config.Level.TileWidth, config.Level.TileHeight)
	}
	return nil, fmt.Errorf("unsupported level format: %s", levelPath)
}

// MustLoadLevel loads an embedded level and panics if it is broken.
func MustLoadLevel(levelPath string) *Level {
	level, err := LoadLevel(levelFS, levelPath)
	if err != nil {
		panic(err)
	}
	return level
}
