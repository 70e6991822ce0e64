package core

// Color identifies the style of a screen cell.
// The platform layer decides how each value is drawn on the terminal.
type Color uint8

// Text colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorGray
	ColorBrightWhite
)

// Tile palette. Each entry paints a cell background plus a matching
// foreground, following the classic 1024/2048 colour scheme.
const (
	ColorBoard Color = iota + 32 // gaps between tiles
	ColorTileEmpty
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper // anything above 2048
)

var tilePalette = map[int]Color{
	0:    ColorTileEmpty,
	2:    ColorTile2,
	4:    ColorTile4,
	8:    ColorTile8,
	16:   ColorTile16,
	32:   ColorTile32,
	64:   ColorTile64,
	128:  ColorTile128,
	256:  ColorTile256,
	512:  ColorTile512,
	1024: ColorTile1024,
	2048: ColorTile2048,
}

// TileColor returns the palette entry for a tile value.
func TileColor(value int) Color {
	if c, ok := tilePalette[value]; ok {
		return c
	}
	return ColorTileSuper
}

// IsTile reports whether c is a tile palette entry.
func (c Color) IsTile() bool {
	return c >= ColorBoard && c <= ColorTileSuper
}
