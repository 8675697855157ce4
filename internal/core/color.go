package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI color.
type Color uint8

// Colors of the board, the HUD and the overlays.
const (
	ColorDefault      Color = iota
	ColorRed                // Game over, collisions
	ColorGreen              // Snake body
	ColorYellow             // Particles, powered snake body
	ColorWhite              // Pause overlay
	ColorGray               // Border, grid, obstacles
	ColorBrightGreen        // Snake head, menu
	ColorBrightYellow       // Normal food, powered snake head
	ColorBrightBlue         // Power food, power-up HUD
	ColorBrightWhite        // HUD
)
