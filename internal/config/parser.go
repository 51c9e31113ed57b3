package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/inkover/internal/draw"
	"github.com/example/inkover/internal/input"
)

// Parse reads configuration from an io.Reader. Unknown keys and sections are
// ignored so newer config files keep loading on older builds.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			continue
		}

		// Parse Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		var err error
		switch currentSection {
		case "":
			err = setRootField(cfg, key, value)
		case "toolbar":
			err = setToolbarField(&cfg.Toolbar, key, value)
		case "rainbow":
			err = setRainbowField(&cfg.Rainbow, key, value)
		case "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		}
		if err != nil {
			if currentSection == "" {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
			return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "color":
		col, err := ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color: %w", err)
		}
		cfg.Color = col
	case "thickness":
		return setFloat(&cfg.Thickness, key, value)
	case "eraser_size":
		return setFloat(&cfg.EraserSize, key, value)
	case "marker_opacity":
		return setFloat(&cfg.MarkerOpacity, key, value)
	case "font":
		cfg.Font = value
	case "font_bold":
		return setBool(&cfg.FontBold, key, value)
	case "font_italic":
		return setBool(&cfg.FontItalic, key, value)
	case "font_size":
		return setFloat(&cfg.FontSize, key, value)
	case "fill":
		return setBool(&cfg.Fill, key, value)
	case "default_tool":
		tool, err := input.ParseTool(value)
		if err != nil {
			return err
		}
		cfg.DefaultTool = tool
	case "save_dir":
		cfg.SaveDir = value
	case "theme":
		cfg.Theme = value
	}
	return nil
}

func setToolbarField(tb *Toolbar, key, value string) error {
	switch strings.ToLower(key) {
	case "top_pinned":
		return setBool(&tb.TopPinned, key, value)
	case "side_pinned":
		return setBool(&tb.SidePinned, key, value)
	case "use_icons":
		return setBool(&tb.UseIcons, key, value)
	case "show_more_colors":
		return setBool(&tb.ShowMoreColors, key, value)
	case "show_actions_section":
		return setBool(&tb.ShowActionsSection, key, value)
	case "show_delay_sliders":
		return setBool(&tb.ShowDelaySliders, key, value)
	case "show_marker_opacity_section":
		return setBool(&tb.ShowMarkerOpacitySection, key, value)
	}
	return nil
}

func setRainbowField(rb *Rainbow, key, value string) error {
	switch strings.ToLower(key) {
	case "enabled":
		return setBool(&rb.Enabled, key, value)
	case "hue_step_per_pixel":
		return setFloat(&rb.HueStepPerPixel, key, value)
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	switch strings.ToLower(key) {
	case "save":
		return setBool(&n.Save, key, value)
	case "copy":
		return setBool(&n.Copy, key, value)
	}
	return nil
}

func setBool(dst *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	*dst = b
	return nil
}

func setFloat(dst *float64, key, value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid number for key %s: %w", key, err)
	}
	*dst = f
	return nil
}

// ParseColor parses a #RRGGBB / #RRGGBBAA hex color or an SVG 1.1 color name.
func ParseColor(s string) (draw.Color, error) {
	if !strings.HasPrefix(s, "#") {
		if named, ok := colornames.Map[strings.ToLower(s)]; ok {
			return draw.FromColor(named), nil
		}
		return draw.Color{}, fmt.Errorf("unknown color name %q", s)
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return draw.Color{}, err
		}
		return draw.Color{
			R: float64(val>>16) / 255,
			G: float64((val>>8)&0xFF) / 255,
			B: float64(val&0xFF) / 255,
			A: 1,
		}, nil
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return draw.Color{}, err
		}
		return draw.Color{
			R: float64(val>>24) / 255,
			G: float64((val>>16)&0xFF) / 255,
			B: float64((val>>8)&0xFF) / 255,
			A: float64(val&0xFF) / 255,
		}, nil
	}
	return draw.Color{}, fmt.Errorf("invalid hex length")
}
