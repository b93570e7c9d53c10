package appearance

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Default appearance values
const (
	DefaultBackground = "#1B1B1D"
	DefaultElapsed    = "#FF5722"
	DefaultRemaining  = "#FFFFFF"
	DefaultText       = "#FFFFFF"
	DefaultCaption    = "#8C8C91"

	DefaultDotSize      = 5
	DefaultGap          = 6
	DefaultDotsPerRow   = 28 // 30 looks cramped on smaller screens
	DefaultPadding      = 30
	DefaultCornerRadius = 20
)

// Appearance is the user-facing visual configuration of the widget
type Appearance struct {
	Colors ColorsConfig `toml:"colors"`
	Grid   GridConfig   `toml:"grid"`
	Window WindowConfig `toml:"window"`
}

// ColorsConfig holds hex color strings for the widget's elements
type ColorsConfig struct {
	Background string `toml:"background"`
	Elapsed    string `toml:"elapsed"`
	Remaining  string `toml:"remaining"`
	Text       string `toml:"text"`
	Caption    string `toml:"caption"`
}

// GridConfig holds the day-dot grid layout, in pixels
type GridConfig struct {
	DotSize    int `toml:"dot_size"`
	Gap        int `toml:"gap"`
	DotsPerRow int `toml:"dots_per_row"`
	Padding    int `toml:"padding"`
}

// WindowConfig holds the panel shape
type WindowConfig struct {
	CornerRadius int `toml:"corner_radius"`
}

// Default returns the built-in appearance.
func Default() Appearance {
	return Appearance{
		Colors: ColorsConfig{
			Background: DefaultBackground,
			Elapsed:    DefaultElapsed,
			Remaining:  DefaultRemaining,
			Text:       DefaultText,
			Caption:    DefaultCaption,
		},
		Grid: GridConfig{
			DotSize:    DefaultDotSize,
			Gap:        DefaultGap,
			DotsPerRow: DefaultDotsPerRow,
			Padding:    DefaultPadding,
		},
		Window: WindowConfig{
			CornerRadius: DefaultCornerRadius,
		},
	}
}

// FilePath returns the expected location of the user's appearance file.
func FilePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "yearglass", "appearance.toml"), nil
}

// Load reads the appearance file at path. A missing file is not an error: the
// defaults are returned. A malformed file returns the defaults along with the
// parse error so the widget always has something to render.
func Load(path string) (Appearance, error) {
	a := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return a, nil
		}
		return a, fmt.Errorf("read appearance file: %w", err)
	}

	if err := toml.Unmarshal(data, &a); err != nil {
		return Default(), fmt.Errorf("parse appearance file: %w", err)
	}

	a.normalize()
	return a, nil
}

// normalize clamps layout values into usable ranges.
func (a *Appearance) normalize() {
	if a.Grid.DotSize < 1 {
		a.Grid.DotSize = DefaultDotSize
	}
	if a.Grid.Gap < 0 {
		a.Grid.Gap = DefaultGap
	}
	if a.Grid.DotsPerRow < 7 {
		a.Grid.DotsPerRow = DefaultDotsPerRow
	}
	if a.Grid.Padding < 0 {
		a.Grid.Padding = DefaultPadding
	}
	if a.Window.CornerRadius < 0 {
		a.Window.CornerRadius = DefaultCornerRadius
	}
}

// BackgroundColor returns the parsed panel color.
func (a Appearance) BackgroundColor() color.NRGBA {
	return parseOr(a.Colors.Background, DefaultBackground)
}

// ElapsedColor returns the parsed color of elapsed-day dots.
func (a Appearance) ElapsedColor() color.NRGBA {
	return parseOr(a.Colors.Elapsed, DefaultElapsed)
}

// RemainingColor returns the parsed color of remaining-day dots.
func (a Appearance) RemainingColor() color.NRGBA {
	return parseOr(a.Colors.Remaining, DefaultRemaining)
}

// TextColor returns the parsed color of the percentage label.
func (a Appearance) TextColor() color.NRGBA {
	return parseOr(a.Colors.Text, DefaultText)
}

// CaptionColor returns the parsed color of the caption label.
func (a Appearance) CaptionColor() color.NRGBA {
	return parseOr(a.Colors.Caption, DefaultCaption)
}

func parseOr(value, fallback string) color.NRGBA {
	c, err := ParseHexColor(value)
	if err != nil {
		c, _ = ParseHexColor(fallback)
	}
	return c
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA strings.
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(s) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[i*2] = s[i]
			expanded[i*2+1] = s[i]
		}
		s = string(expanded)
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	if len(s) == 8 {
		return color.NRGBA{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: uint8(v),
		}, nil
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}
