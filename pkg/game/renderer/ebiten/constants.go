package ebiten

import "image/color"

// Color palette
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPlayer        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorFrontier      = color.RGBA{255, 100, 100, 255} // Bright red
	colorDoorOpen      = color.RGBA{0, 220, 0, 255}     // Bright green
	colorDoorClosed    = color.RGBA{255, 200, 100, 255} // Orange
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorAction        = color.RGBA{180, 150, 250, 255} // Blue-purple
)

// wallColors shades walls by variant
var wallColors = []color.RGBA{
	{180, 180, 200, 255},
	{150, 160, 190, 255},
	{200, 180, 160, 255},
	{140, 140, 150, 255},
}

// themeColors tints floors by room theme
var themeColors = []color.RGBA{
	{60, 110, 130, 255},
	{130, 120, 60, 255},
	{120, 70, 130, 255},
	{60, 120, 70, 255},
	{70, 80, 150, 255},
	{140, 70, 70, 255},
	{90, 140, 140, 255},
	{150, 140, 90, 255},
}

// Tile size constraints
const (
	minTileSize = 4
	maxTileSize = 48
)

// Screen layout margins in pixels
const (
	frameBorder = 10
	headerLines = 1
	footerLines = 8
)

const (
	keyRepeatInitialDelay = 300 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 120 // Interval between repeat events (milliseconds)
)
