package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Palette used by the barber games.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrown
	ColorOrange
	ColorGray
	ColorBlack
)
