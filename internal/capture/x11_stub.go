//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package capture

import (
	"fmt"
	"image"
)

func x11Screenshot() (*image.RGBA, error) {
	return nil, fmt.Errorf("x11 capture is not supported on this platform")
}

func listMonitors() ([]MonitorInfo, error) {
	return nil, fmt.Errorf("monitor listing is not supported on this platform")
}
