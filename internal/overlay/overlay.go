// Package overlay hosts the annotation window: it owns the shiny event loop,
// the committed annotation list with undo/redo, and the save/copy actions.
// All drawing decisions are delegated to the input state core.
package overlay

import (
	"bytes"
	"fmt"
	"image"
	dr "image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.design/x/clipboard"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/inkover/internal/config"
	"github.com/example/inkover/internal/draw"
	"github.com/example/inkover/internal/input"
	"github.com/example/inkover/internal/notify"
	"github.com/example/inkover/internal/render"
	"github.com/example/inkover/internal/theme"
)

const statusHeight = 24

// Overlay holds the annotation session over a captured backdrop.
type Overlay struct {
	backdrop *image.RGBA
	output   string
	saveDir  string
	notifier *notify.Notifier
	state    *input.State
	tracker  *input.FullTracker
	theme    *theme.Theme
	shadow   bool

	ops         []operation
	redoOps     []operation
	pointer     image.Point
	clipboardOK bool

	onClose func()
}

// Option modifies an Overlay during creation.
type Option func(*Overlay)

// WithBackdrop sets the captured desktop image the overlay annotates.
func WithBackdrop(img *image.RGBA) Option { return func(o *Overlay) { o.backdrop = img } }

// WithOutput sets an explicit output file path used when saving.
func WithOutput(out string) Option { return func(o *Overlay) { o.output = out } }

// WithSaveDir sets the directory timestamped save files land in.
func WithSaveDir(dir string) Option { return func(o *Overlay) { o.saveDir = dir } }

// WithNotifier attaches the desktop notifier.
func WithNotifier(n *notify.Notifier) Option { return func(o *Overlay) { o.notifier = n } }

// WithTheme sets the palette the overlay chrome is drawn with.
func WithTheme(t *theme.Theme) Option {
	return func(o *Overlay) {
		if t != nil {
			o.theme = t
		}
	}
}

// WithShadow enables a drop shadow on saved images.
func WithShadow(enabled bool) Option { return func(o *Overlay) { o.shadow = enabled } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(o *Overlay) { o.onClose = fn } }

// New creates an Overlay seeded from the configuration.
func New(cfg *config.Config, opts ...Option) *Overlay {
	o := &Overlay{
		saveDir: cfg.SaveDir,
		tracker: &input.FullTracker{},
		theme:   theme.Default(),
	}
	stateOpts := append(cfg.Options(),
		input.WithDirtyTracker(o.tracker),
		input.WithActionHandler(o),
	)
	o.state = input.New(stateOpts...)
	cfg.InitToolbar(o.state)
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State exposes the input core, mainly for tests.
func (o *Overlay) State() *input.State { return o.state }

// HandleAction receives toolbar and keyboard actions from the input core.
func (o *Overlay) HandleAction(a input.Action) {
	switch a {
	case input.ActionUndo:
		if n := len(o.ops); n > 0 {
			o.redoOps = append(o.redoOps, o.ops[n-1])
			o.ops = o.ops[:n-1]
		}
	case input.ActionRedo:
		if n := len(o.redoOps); n > 0 {
			o.ops = append(o.ops, o.redoOps[n-1])
			o.redoOps = o.redoOps[:n-1]
		}
	case input.ActionClearCanvas:
		o.ops = nil
		o.redoOps = nil
	case input.ActionEnterTextMode:
		o.state.BeginTextInput(o.pointer.X, o.pointer.Y)
	}
	o.tracker.MarkFull()
}

func (o *Overlay) pushOp(op operation) {
	o.ops = append(o.ops, op)
	o.redoOps = nil
}

// commitGesture finishes the in-flight gesture and records its operation.
// Eraser and highlight commits are built here from the accumulated trail
// because the input core only produces shapes for the constructive tools.
func (o *Overlay) commitGesture(x, y int) {
	d, ok := o.state.DrawingState().(*input.Drawing)
	if !ok {
		return
	}
	tool := d.Tool
	shape, built := o.state.FinishGesture(x, y)
	switch {
	case built:
		o.pushOp(shapeOp{shape: shape})
	case tool == input.ToolHighlight:
		o.pushOp(shapeOp{shape: draw.MarkerStroke{
			Points: clonePoints(d.Points),
			Color:  o.state.HighlightColor(),
			Thick:  o.state.Thickness(),
		}})
	case tool == input.ToolEraser:
		o.pushOp(eraseOp{points: clonePoints(d.Points), size: o.state.EraserSize()})
	}
}

func clonePoints(points []image.Point) []image.Point {
	out := make([]image.Point, len(points))
	copy(out, points)
	return out
}

// commitText renders the entered text as a committed operation. Empty input
// is dropped.
func (o *Overlay) commitText() {
	pos, text, ok := o.state.FinishTextInput()
	if !ok || strings.TrimSpace(text) == "" {
		return
	}
	o.pushOp(textOp{
		pos:  pos,
		text: text,
		col:  o.state.Color(),
		face: faceForSize(o.state.FontSize()),
	})
}

// composite renders the backdrop plus all committed operations, without any
// in-flight preview or chrome. This is what save and copy export.
func (o *Overlay) composite() *image.RGBA {
	out := image.NewRGBA(o.backdrop.Bounds())
	dr.Draw(out, out.Bounds(), o.backdrop, image.Point{}, dr.Src)
	c := draw.NewCanvas(out)
	for _, op := range o.ops {
		op.apply(c, o.backdrop)
	}
	return out
}

func (o *Overlay) savePath() string {
	if o.output != "" {
		return o.output
	}
	dir := o.saveDir
	if dir == "" {
		dir = "."
	}
	name := fmt.Sprintf("inkover-%s.png", time.Now().Format("20060102-150405"))
	return filepath.Join(dir, name)
}

func (o *Overlay) save() (string, error) {
	path := o.savePath()
	img := o.composite()
	if o.shadow {
		img = render.Shadow(img, render.DefaultShadowOptions())
	}
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(out, img); err != nil {
		if cerr := out.Close(); cerr != nil {
			log.Printf("save: closing file: %v", cerr)
		}
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return path, nil
}

func (o *Overlay) copyToClipboard() error {
	if !o.clipboardOK {
		return fmt.Errorf("clipboard unavailable")
	}
	img := o.composite()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	o.notifier.Copy("annotated image", img)
	return nil
}

// Run executes the overlay loop using shiny's driver.
func (o *Overlay) Run() { driver.Main(o.main) }

func (o *Overlay) main(s screen.Screen) {
	width := o.backdrop.Bounds().Dx()
	height := o.backdrop.Bounds().Dy() + statusHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "Inkover"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	if o.onClose != nil {
		defer o.onClose()
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: %v", err)
	} else {
		o.clipboardOK = true
	}

	var message string
	var messageUntil time.Time
	say := func(format string, args ...any) {
		message = fmt.Sprintf(format, args...)
		log.Print(message)
		messageUntil = time.Now().Add(2 * time.Second)
	}

	quit := false
	keyboardAction := map[keyShortcut]string{}
	actions := map[string]func(){}
	register := func(name string, shortcuts []keyShortcut, fn func()) {
		actions[name] = fn
		for _, sc := range shortcuts {
			keyboardAction[sc] = name
		}
	}

	register("undo", []keyShortcut{{Rune: 'z', Modifiers: key.ModControl}}, func() {
		o.HandleAction(input.ActionUndo)
	})
	register("redo", []keyShortcut{{Rune: 'y', Modifiers: key.ModControl}}, func() {
		o.HandleAction(input.ActionRedo)
	})
	register("clear", []keyShortcut{{Rune: 'd', Modifiers: key.ModControl}}, func() {
		o.HandleAction(input.ActionClearCanvas)
		say("canvas cleared")
	})
	register("text", []keyShortcut{{Rune: 't'}}, func() {
		o.HandleAction(input.ActionEnterTextMode)
	})
	register("save", []keyShortcut{{Rune: 's', Modifiers: key.ModControl}}, func() {
		path, err := o.save()
		if err != nil {
			log.Printf("save: %v", err)
			return
		}
		o.notifier.Save(path)
		say("saved %s", path)
	})
	register("copy", []keyShortcut{{Rune: 'c', Modifiers: key.ModControl}}, func() {
		if err := o.copyToClipboard(); err != nil {
			log.Printf("copy: %v", err)
			return
		}
		say("image copied to clipboard")
	})
	register("fill", []keyShortcut{{Rune: 'f'}}, func() {
		o.state.SetFillEnabled(!o.state.FillEnabled())
	})
	register("rainbow", []keyShortcut{{Rune: 'w'}}, func() {
		o.state.ToggleRainbowMode()
	})
	register("toolbar", []keyShortcut{{Code: key.CodeTab}}, func() {
		o.state.SetToolbarVisible(!o.state.ToolbarVisible())
	})
	register("thinner", []keyShortcut{{Rune: '['}}, func() {
		o.state.NudgeThicknessForActiveTool(-1)
	})
	register("thicker", []keyShortcut{{Rune: ']'}}, func() {
		o.state.NudgeThicknessForActiveTool(1)
	})
	register("cancel", []keyShortcut{{Code: key.CodeEscape}}, func() {
		o.state.CancelGesture()
	})
	register("quit", []keyShortcut{{Rune: 'q'}}, func() {
		quit = true
	})

	toolKeys := map[rune]input.Tool{
		'p': input.ToolPen,
		'l': input.ToolLine,
		'x': input.ToolRect,
		'o': input.ToolEllipse,
		'a': input.ToolArrow,
		'm': input.ToolMarker,
		'h': input.ToolHighlight,
		'e': input.ToolEraser,
		's': input.ToolSelect,
	}

	w.Send(paint.Event{})

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			o.drawFrame(s, w, width, height, message, messageUntil)
		case mouse.Event:
			x, y := int(e.X), int(e.Y)
			o.pointer = image.Pt(x, y)
			switch e.Direction {
			case mouse.DirPress:
				if e.Button != mouse.ButtonLeft {
					continue
				}
				if _, ok := o.state.DrawingState().(*input.TextInput); ok {
					continue
				}
				o.state.StartGesture(x, y)
				w.Send(paint.Event{})
			case mouse.DirNone:
				if _, ok := o.state.DrawingState().(*input.Drawing); ok {
					o.state.ExtendGesture(x, y)
					w.Send(paint.Event{})
				}
			case mouse.DirRelease:
				if e.Button != mouse.ButtonLeft {
					continue
				}
				o.commitGesture(x, y)
				w.Send(paint.Event{})
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if _, ok := o.state.DrawingState().(*input.TextInput); ok {
				switch e.Code {
				case key.CodeReturnEnter:
					o.commitText()
				case key.CodeEscape:
					o.state.CancelGesture()
				case key.CodeDeleteBackspace:
					o.state.DeleteTextRune()
				default:
					if e.Rune > 0 {
						o.state.AppendTextRune(e.Rune)
					}
				}
				w.Send(paint.Event{})
				continue
			}
			ks := keyShortcut{Rune: unicode.ToLower(e.Rune), Code: e.Code, Modifiers: e.Modifiers}
			if name, ok := keyboardAction[ks]; ok {
				actions[name]()
				if quit {
					return
				}
				w.Send(paint.Event{})
				continue
			}
			if e.Modifiers == 0 {
				if tool, ok := toolKeys[unicode.ToLower(e.Rune)]; ok {
					o.state.SetToolOverride(tool)
					w.Send(paint.Event{})
				}
			}
		}
	}
}

// keyShortcut describes a keyboard combination that triggers an action.
type keyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

func (o *Overlay) drawFrame(s screen.Screen, w screen.Window, width, height int, message string, messageUntil time.Time) {
	b, err := s.NewBuffer(image.Point{X: width, Y: height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	frame := b.RGBA()

	dr.Draw(frame, o.backdrop.Bounds(), o.backdrop, image.Point{}, dr.Src)
	c := draw.NewCanvas(frame)
	for _, op := range o.ops {
		op.apply(c, o.backdrop)
	}
	o.state.RenderProvisional(c, o.pointer.X, o.pointer.Y)

	if ti, ok := o.state.DrawingState().(*input.TextInput); ok {
		d := &font.Drawer{
			Dst:  frame,
			Src:  image.NewUniform(o.state.Color().NRGBA()),
			Face: faceForSize(o.state.FontSize()),
			Dot:  fixed.P(ti.Pos.X, ti.Pos.Y),
		}
		d.DrawString(ti.Text)
		d.Src = image.NewUniform(o.theme.TextCursor)
		d.DrawString("|")
	}

	if o.state.ToolbarVisible() {
		o.drawStatus(frame, width, height)
	}

	if message != "" && time.Now().Before(messageUntil) {
		box := image.Rect(4, height-statusHeight-22, 12+len(message)*7, height-statusHeight-4)
		dr.Draw(frame, box, &image.Uniform{o.theme.MessageBackground}, image.Point{}, dr.Src)
		d := &font.Drawer{Dst: frame, Src: image.NewUniform(o.theme.MessageText), Face: basicfont.Face7x13,
			Dot: fixed.P(8, height-statusHeight-8)}
		d.DrawString(message)
	}

	o.tracker.Take()
	o.state.Redrawn()
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

func (o *Overlay) drawStatus(dst *image.RGBA, width, height int) {
	bar := image.Rect(0, height-statusHeight, width, height)
	dr.Draw(dst, bar, &image.Uniform{o.theme.StatusBackground}, image.Point{}, dr.Src)

	// Active color swatch with a one pixel border.
	swatch := image.Rect(bar.Min.X+4, bar.Min.Y+5, bar.Min.X+18, bar.Min.Y+19)
	dr.Draw(dst, swatch, &image.Uniform{o.theme.SwatchBorder}, image.Point{}, dr.Src)
	dr.Draw(dst, swatch.Inset(1), &image.Uniform{o.state.Color().NRGBA()}, image.Point{}, dr.Src)

	n := o.state.Color().NRGBA()
	rainbow := "off"
	if o.state.RainbowEnabled() {
		rainbow = "on"
	}
	fill := "off"
	if o.state.FillEnabled() {
		fill = "on"
	}
	line := fmt.Sprintf("%s  #%02X%02X%02X  thick %.0f  fill %s  rainbow %s  ^Z undo ^Y redo ^S save ^C copy Q quit",
		o.state.ActiveTool(), n.R, n.G, n.B, o.state.Thickness(), fill, rainbow)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(o.theme.StatusText), Face: basicfont.Face7x13,
		Dot: fixed.P(swatch.Max.X+6, bar.Min.Y+16)}
	d.DrawString(line)
}
