package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/example/inkover/internal/capture"
	"github.com/example/inkover/internal/input"
	"github.com/example/inkover/internal/overlay"
)

var captureBackdropFn = capture.Backdrop

type runCmd struct {
	*root
	fs            *flag.FlagSet
	display       string
	output        string
	saveDir       string
	screenshot    string
	tool          string
	includeCursor bool
	shadow        bool
}

func parseRunCmd(args []string, r *root) (*runCmd, error) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	c := &runCmd{root: r.subcommand("run"), fs: fs}
	fs.StringVar(&c.display, "display", "", "monitor to draw on (primary, an index, or an output name)")
	fs.StringVar(&c.output, "output", "", "save the annotated image to this file instead of a timestamped one")
	fs.StringVar(&c.saveDir, "save-dir", "", "directory timestamped save files land in")
	fs.StringVar(&c.screenshot, "screenshot", "", "annotate an existing PNG instead of capturing the screen")
	fs.StringVar(&c.tool, "tool", "", "tool selected at startup (pen, line, rect, ellipse, arrow, marker, highlight, eraser, select)")
	fs.BoolVar(&c.includeCursor, "include-cursor", false, "include the pointer cursor in the captured backdrop")
	fs.BoolVar(&c.shadow, "shadow", false, "add a drop shadow to saved images")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *runCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *runCmd) Run() error {
	cfg := c.root.config
	if c.tool != "" {
		tool, err := input.ParseTool(c.tool)
		if err != nil {
			return err
		}
		cfg.DefaultTool = tool
	}

	var img *image.RGBA
	if c.screenshot != "" {
		var err error
		img, err = loadBackdrop(c.screenshot)
		if err != nil {
			return fmt.Errorf("failed to load backdrop: %w", err)
		}
	} else {
		var err error
		img, err = captureBackdropFn(c.display, capture.Options{IncludeCursor: c.includeCursor})
		if err != nil {
			return fmt.Errorf("failed to capture backdrop: %w", err)
		}
	}

	saveDir := c.saveDir
	if saveDir == "" {
		saveDir = cfg.SaveDir
	}
	o := overlay.New(cfg,
		overlay.WithBackdrop(img),
		overlay.WithOutput(c.output),
		overlay.WithSaveDir(saveDir),
		overlay.WithNotifier(c.root.notifier),
		overlay.WithTheme(c.root.activeTheme),
		overlay.WithShadow(c.shadow),
	)
	o.Run()
	return nil
}

func loadBackdrop(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	rgba := image.NewRGBA(decoded.Bounds())
	draw.Draw(rgba, rgba.Bounds(), decoded, decoded.Bounds().Min, draw.Src)
	return rgba, nil
}
