//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"fmt"
	"image"
	"strings"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

// x11Screenshot grabs the whole root window.
func x11Screenshot() (*image.RGBA, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect X server: %w", err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	if setup == nil {
		return nil, fmt.Errorf("xproto setup unavailable")
	}
	screen := setup.DefaultScreen(conn)
	if screen == nil {
		return nil, fmt.Errorf("xproto screen unavailable")
	}

	width := int(screen.WidthInPixels)
	height := int(screen.HeightInPixels)
	reply, err := xproto.GetImage(
		conn,
		xproto.ImageFormatZPixmap,
		xproto.Drawable(screen.Root),
		0, 0,
		uint16(width), uint16(height),
		0xFFFFFFFF,
	).Reply()
	if err != nil {
		return nil, fmt.Errorf("root pixels: %w", err)
	}
	return xImageToRGBA(setup, reply, width, height)
}

func listMonitors() ([]MonitorInfo, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect X server: %w", err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	if setup == nil {
		return nil, fmt.Errorf("xproto setup unavailable")
	}
	screen := setup.DefaultScreen(conn)
	if screen == nil {
		return nil, fmt.Errorf("xproto screen unavailable")
	}

	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("init randr: %w", err)
	}
	res, err := randr.GetScreenResources(conn, screen.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("randr screen resources: %w", err)
	}
	primaryOutput := randr.Output(0)
	if primary, err := randr.GetOutputPrimary(conn, screen.Root).Reply(); err == nil {
		primaryOutput = primary.Output
	}

	monitors := make([]MonitorInfo, 0, len(res.Outputs))
	idx := 0
	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(conn, output, res.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		crtc, err := randr.GetCrtcInfo(conn, info.Crtc, res.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		monitors = append(monitors, MonitorInfo{
			Index: idx,
			Name:  strings.TrimSpace(string(info.Name)),
			Rect: image.Rect(
				int(crtc.X),
				int(crtc.Y),
				int(crtc.X)+int(crtc.Width),
				int(crtc.Y)+int(crtc.Height),
			),
			Primary: output == primaryOutput,
		})
		idx++
	}
	if len(monitors) == 0 {
		return nil, fmt.Errorf("no monitors available")
	}
	return monitors, nil
}

func xImageToRGBA(setup *xproto.SetupInfo, reply *xproto.GetImageReply, width, height int) (*image.RGBA, error) {
	if setup == nil {
		return nil, fmt.Errorf("xproto setup unavailable")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("screen has empty geometry")
	}
	if reply == nil || len(reply.Data) == 0 {
		return nil, fmt.Errorf("screen pixels: empty image data")
	}

	bitsPerPixel := 0
	for _, format := range setup.PixmapFormats {
		if format.Depth == reply.Depth {
			bitsPerPixel = int(format.BitsPerPixel)
			break
		}
	}
	if bitsPerPixel == 0 {
		return nil, fmt.Errorf("unsupported screen depth %d", reply.Depth)
	}
	bytesPerPixel := bitsPerPixel / 8
	if bytesPerPixel < 3 {
		return nil, fmt.Errorf("unsupported screen pixel format %d bpp", bitsPerPixel)
	}

	stride := len(reply.Data) / height
	if stride*height != len(reply.Data) {
		return nil, fmt.Errorf("screen pixels: unexpected stride")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := reply.Data[y*stride : (y+1)*stride]
		for x := 0; x < width; x++ {
			off := x * bytesPerPixel
			if off+3 > len(row) {
				break
			}
			// X serves BGRA byte order for ZPixmap at depth 24/32.
			b := row[off]
			g := row[off+1]
			r := row[off+2]
			a := byte(0xFF)
			if bytesPerPixel >= 4 && off+3 < len(row) {
				a = row[off+3]
			}
			pix := img.PixOffset(x, y)
			img.Pix[pix+0] = r
			img.Pix[pix+1] = g
			img.Pix[pix+2] = b
			img.Pix[pix+3] = a
		}
	}
	return img, nil
}
