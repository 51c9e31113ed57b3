// Package capture grabs the desktop pixels the overlay draws on top of. It
// prefers a direct X11 root-window grab and falls back to the freedesktop
// screenshot portal when no X server is reachable.
package capture

import (
	"fmt"
	"image"
	"image/draw"
	"strconv"
	"strings"
)

// Options tunes how the backdrop is captured.
type Options struct {
	IncludeCursor bool
}

// MonitorInfo describes an individual monitor in the X11 layout.
type MonitorInfo struct {
	Index   int
	Name    string
	Rect    image.Rectangle
	Primary bool
}

// Seams for tests.
var (
	x11ScreenshotFn    = x11Screenshot
	portalScreenshotFn = portalScreenshot
	listMonitorsFn     = listMonitors
)

// Backdrop captures the desktop. When a display selector is provided the
// result is cropped to the matching monitor.
func Backdrop(display string, opts Options) (*image.RGBA, error) {
	img, x11Err := x11ScreenshotFn()
	if x11Err != nil {
		var portalErr error
		img, portalErr = portalScreenshotFn(false, opts)
		if portalErr != nil {
			return nil, fmt.Errorf("x11 capture: %v; portal fallback: %w", x11Err, portalErr)
		}
	}
	if display == "" {
		return img, nil
	}
	monitors, err := listMonitorsFn()
	if err != nil {
		return nil, err
	}
	monitor, err := FindMonitor(monitors, display)
	if err != nil {
		return nil, err
	}
	return cropToRect(img, monitor.Rect)
}

// ListMonitors retrieves all monitors using the X RandR extension.
func ListMonitors() ([]MonitorInfo, error) {
	return listMonitorsFn()
}

// FindMonitor resolves a monitor selector against the provided list. The
// selector may be "primary", an index ("0", "#1") or a substring of the
// output name.
func FindMonitor(monitors []MonitorInfo, selector string) (MonitorInfo, error) {
	if len(monitors) == 0 {
		return MonitorInfo{}, fmt.Errorf("no monitors available")
	}
	if selector == "" {
		return monitors[0], nil
	}
	lower := strings.ToLower(strings.TrimSpace(selector))
	if lower == "primary" {
		for _, mon := range monitors {
			if mon.Primary {
				return mon, nil
			}
		}
		return monitors[0], nil
	}
	if strings.HasPrefix(lower, "#") {
		lower = lower[1:]
	}
	if idx, err := strconv.Atoi(lower); err == nil {
		if idx < 0 || idx >= len(monitors) {
			return MonitorInfo{}, fmt.Errorf("monitor index %d out of range", idx)
		}
		return monitors[idx], nil
	}
	for _, mon := range monitors {
		if strings.Contains(strings.ToLower(mon.Name), lower) {
			return mon, nil
		}
	}
	return MonitorInfo{}, fmt.Errorf("monitor %q not found", selector)
}

func cropToRect(src *image.RGBA, rect image.Rectangle) (*image.RGBA, error) {
	rect = rect.Intersect(src.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("requested region outside captured image")
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst, nil
}

// x11Screenshot, portalScreenshot and listMonitors are implemented in
// platform-specific files.
