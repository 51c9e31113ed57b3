package config

import (
	"fmt"
	"strings"

	"github.com/example/inkover/internal/draw"
	"github.com/example/inkover/internal/input"
)

// Toolbar holds the toolbar layout flags applied once at startup.
type Toolbar struct {
	TopPinned                bool
	SidePinned               bool
	UseIcons                 bool
	ShowMoreColors           bool
	ShowActionsSection       bool
	ShowDelaySliders         bool
	ShowMarkerOpacitySection bool
}

// Rainbow holds the rainbow colorizer settings.
type Rainbow struct {
	Enabled         bool
	HueStepPerPixel float64
}

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Color         draw.Color
	Thickness     float64
	EraserSize    float64
	MarkerOpacity float64
	Font          string
	FontBold      bool
	FontItalic    bool
	FontSize      float64
	Fill          bool
	DefaultTool   input.Tool
	SaveDir       string
	Theme         string

	Toolbar Toolbar
	Rainbow Rainbow
	Notify  Notify
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Color:         draw.Color{R: 1, A: 1},
		Thickness:     3,
		EraserSize:    12,
		MarkerOpacity: 0.5,
		Font:          "sans-serif",
		FontSize:      16,
		DefaultTool:   input.ToolPen,
		Toolbar: Toolbar{
			TopPinned:                true,
			UseIcons:                 true,
			ShowActionsSection:       true,
			ShowMarkerOpacitySection: true,
		},
		Rainbow: Rainbow{
			HueStepPerPixel: 0.5,
		},
	}
}

// Options converts the configuration into the input-state seed options.
func (c *Config) Options() []input.Option {
	return []input.Option{
		input.WithColor(c.Color),
		input.WithThickness(c.Thickness),
		input.WithEraserSize(c.EraserSize),
		input.WithMarkerOpacity(c.MarkerOpacity),
		input.WithFont(input.FontDescriptor{Family: c.Font, Bold: c.FontBold, Italic: c.FontItalic}, c.FontSize),
		input.WithFillEnabled(c.Fill),
		input.WithDefaultTool(c.DefaultTool),
		input.WithRainbowEnabled(c.Rainbow.Enabled),
		input.WithRainbowStep(c.Rainbow.HueStepPerPixel),
	}
}

// InitToolbar applies the startup toolbar layout to the state.
func (c *Config) InitToolbar(s *input.State) {
	s.InitToolbarFromConfig(
		c.Toolbar.TopPinned,
		c.Toolbar.SidePinned,
		c.Toolbar.UseIcons,
		c.Toolbar.ShowMoreColors,
		c.Toolbar.ShowActionsSection,
		c.Toolbar.ShowDelaySliders,
		c.Toolbar.ShowMarkerOpacitySection,
	)
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	fmt.Fprintf(&sb, "color = %s\n", toHex(c.Color))
	fmt.Fprintf(&sb, "thickness = %v\n", c.Thickness)
	fmt.Fprintf(&sb, "eraser_size = %v\n", c.EraserSize)
	fmt.Fprintf(&sb, "marker_opacity = %v\n", c.MarkerOpacity)
	fmt.Fprintf(&sb, "font = %s\n", c.Font)
	if c.FontBold {
		fmt.Fprintf(&sb, "font_bold = %v\n", c.FontBold)
	}
	if c.FontItalic {
		fmt.Fprintf(&sb, "font_italic = %v\n", c.FontItalic)
	}
	fmt.Fprintf(&sb, "font_size = %v\n", c.FontSize)
	fmt.Fprintf(&sb, "fill = %v\n", c.Fill)
	fmt.Fprintf(&sb, "default_tool = %s\n", c.DefaultTool)
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	sb.WriteString("\n")

	sb.WriteString("[toolbar]\n")
	fmt.Fprintf(&sb, "top_pinned = %v\n", c.Toolbar.TopPinned)
	fmt.Fprintf(&sb, "side_pinned = %v\n", c.Toolbar.SidePinned)
	fmt.Fprintf(&sb, "use_icons = %v\n", c.Toolbar.UseIcons)
	fmt.Fprintf(&sb, "show_more_colors = %v\n", c.Toolbar.ShowMoreColors)
	fmt.Fprintf(&sb, "show_actions_section = %v\n", c.Toolbar.ShowActionsSection)
	fmt.Fprintf(&sb, "show_delay_sliders = %v\n", c.Toolbar.ShowDelaySliders)
	fmt.Fprintf(&sb, "show_marker_opacity_section = %v\n", c.Toolbar.ShowMarkerOpacitySection)
	sb.WriteString("\n")

	sb.WriteString("[rainbow]\n")
	fmt.Fprintf(&sb, "enabled = %v\n", c.Rainbow.Enabled)
	fmt.Fprintf(&sb, "hue_step_per_pixel = %v\n", c.Rainbow.HueStepPerPixel)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	return sb.String()
}

func toHex(c draw.Color) string {
	n := c.NRGBA()
	if n.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}
