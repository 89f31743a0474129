// Package ui provides HUD drawing helpers with consistent styling.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds the HUD color palette and metrics.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	AccentColor   rl.Color

	BarBg         rl.Color
	BarFill       rl.Color
	BarFillLow    rl.Color
	BarFillMedium rl.Color
	BarFillHigh   rl.Color

	FontSize       int32
	HeaderFontSize int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
}

// DefaultTheme returns the standard kitchen HUD theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.NewColor(28, 26, 24, 230),
		PanelBorder:   rl.NewColor(140, 130, 115, 255),
		SectionHeader: rl.NewColor(255, 200, 90, 255),
		LabelColor:    rl.NewColor(170, 165, 155, 255),
		ValueColor:    rl.NewColor(235, 230, 220, 255),
		AccentColor:   rl.NewColor(255, 200, 90, 255),

		BarBg:         rl.NewColor(50, 46, 42, 255),
		BarFill:       rl.NewColor(120, 200, 90, 255),
		BarFillLow:    rl.NewColor(230, 80, 70, 255),
		BarFillMedium: rl.NewColor(250, 215, 90, 255),
		BarFillHigh:   rl.NewColor(120, 200, 90, 255),

		FontSize:       14,
		HeaderFontSize: 18,
		LineHeight:     20,
		LabelWidth:     110,
		BarHeight:      8,
	}
}
