package render

import "document-scanner/internal/domain"

// Palette is the set of colours a theme paints the page with.
type Palette struct {
	Background string
	Card       string
	Text       string
	Accent     string
	Secondary  string
	Border     string
	Success    string
	Error      string
	Bulb       string
	Shadow     string
}

var (
	darkPalette = Palette{
		Background: "#1a1a1a",
		Card:       "#2d2d2d",
		Text:       "#ffffff",
		Accent:     "#00d4aa",
		Secondary:  "#0099cc",
		Border:     "#404040",
		Success:    "#00cc88",
		Error:      "#ff6b6b",
		Bulb:       "#ffd700",
		Shadow:     "0.3",
	}
	lightPalette = Palette{
		Background: "#ffffff",
		Card:       "#f8f9fa",
		Text:       "#2c3e50",
		Accent:     "#007acc",
		Secondary:  "#0056b3",
		Border:     "#dee2e6",
		Success:    "#28a745",
		Error:      "#dc3545",
		Bulb:       "#fff5b7",
		Shadow:     "0.1",
	}
)

// PaletteFor returns the palette for a theme preference.
func PaletteFor(theme domain.ThemePreference) Palette {
	if theme.Dark {
		return darkPalette
	}
	return lightPalette
}
