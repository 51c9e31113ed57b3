// Package theme holds the color palette the overlay chrome is drawn with.
// The annotation colors themselves come from the drawing style, not the
// theme; only the status bar, transient messages and the text cursor are
// themed.
package theme

import (
	"image/color"
)

// Theme defines the colors of the overlay chrome.
type Theme struct {
	Name string

	StatusBackground color.RGBA // status bar fill
	StatusText       color.RGBA
	SwatchBorder     color.RGBA // border around the active color swatch

	MessageBackground color.RGBA // transient message box
	MessageText       color.RGBA

	TextCursor color.RGBA // caret drawn while typing an annotation
}

// Default returns the light theme used when nothing else is configured.
func Default() *Theme {
	return &Theme{
		Name:              "Default",
		StatusBackground:  color.RGBA{220, 220, 220, 255},
		StatusText:        color.RGBA{0, 0, 0, 255},
		SwatchBorder:      color.RGBA{0, 0, 0, 255},
		MessageBackground: color.RGBA{220, 220, 220, 255},
		MessageText:       color.RGBA{0, 0, 0, 255},
		TextCursor:        color.RGBA{0, 0, 0, 255},
	}
}

// Dark returns the built-in dark theme.
func Dark() *Theme {
	return &Theme{
		Name:              "Dark",
		StatusBackground:  color.RGBA{40, 40, 40, 255},
		StatusText:        color.RGBA{230, 230, 230, 255},
		SwatchBorder:      color.RGBA{230, 230, 230, 255},
		MessageBackground: color.RGBA{60, 60, 60, 255},
		MessageText:       color.RGBA{230, 230, 230, 255},
		TextCursor:        color.RGBA{230, 230, 230, 255},
	}
}

// HighContrast returns the built-in high contrast theme.
func HighContrast() *Theme {
	return &Theme{
		Name:              "HighContrast",
		StatusBackground:  color.RGBA{0, 0, 0, 255},
		StatusText:        color.RGBA{255, 255, 0, 255},
		SwatchBorder:      color.RGBA{255, 255, 255, 255},
		MessageBackground: color.RGBA{0, 0, 0, 255},
		MessageText:       color.RGBA{255, 255, 0, 255},
		TextCursor:        color.RGBA{255, 255, 0, 255},
	}
}

func builtin(name string) (*Theme, bool) {
	switch name {
	case "", "default":
		return Default(), true
	case "dark":
		return Dark(), true
	case "high_contrast":
		return HighContrast(), true
	}
	return nil, false
}
