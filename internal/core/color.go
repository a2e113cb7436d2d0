package core

// Color identifies the palette entry of a screen cell.
// The platform layer decides how each entry is displayed.
type Color uint8

// Palette for the runner scene.
const (
	ColorDefault    Color = iota
	ColorPlayer           // Runner body
	ColorEyes             // Runner eyes
	ColorObstacle         // Obstacle blocks
	ColorGround           // Grass strip
	ColorGroundLine       // Top edge of the grass
	ColorText             // HUD text
	ColorOverlay          // Dimmed overlay behind messages
	ColorWhite            // Overlay text
)
