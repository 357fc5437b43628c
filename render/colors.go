package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for terrain and actors
var (
	RgbGrass      = tcell.NewRGBColor(60, 170, 60)   // Meadow green
	RgbGrassBg    = tcell.NewRGBColor(20, 60, 20)    // Dark green ground
	RgbDirt       = tcell.NewRGBColor(160, 110, 60)  // Light brown
	RgbDirtBg     = tcell.NewRGBColor(70, 45, 25)    // Dark brown ground
	RgbWater      = tcell.NewRGBColor(120, 170, 255) // Foam blue
	RgbWaterBg    = tcell.NewRGBColor(20, 50, 120)   // Deep blue
	RgbPlayer     = tcell.NewRGBColor(255, 220, 0)   // Bright yellow
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background

	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
)
