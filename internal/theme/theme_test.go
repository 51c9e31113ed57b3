package theme

import (
	"image/color"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	in := strings.NewReader(`Name: Custom
StatusBackground: #112233
MessageText: #FFFFFF80
// a comment
Unknown: #000000
`)
	th, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "Custom" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.StatusBackground != (color.RGBA{0x11, 0x22, 0x33, 0xFF}) {
		t.Errorf("StatusBackground = %+v", th.StatusBackground)
	}
	if th.MessageText != (color.RGBA{0xFF, 0xFF, 0xFF, 0x80}) {
		t.Errorf("MessageText = %+v", th.MessageText)
	}
	if th.StatusText != Default().StatusText {
		t.Errorf("unset keys should keep defaults, got %+v", th.StatusText)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("StatusText: red")); err == nil {
		t.Fatal("expected error for non-hex color")
	}
	if _, err := Parse(strings.NewReader("StatusText: #12")); err == nil {
		t.Fatal("expected error for short hex color")
	}
}

func TestLoadBuiltins(t *testing.T) {
	l := NewLoader()
	for name, want := range map[string]string{
		"":              "Default",
		"default":       "Default",
		"Dark":          "Dark",
		"high_contrast": "HighContrast",
	} {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if th.Name != want {
			t.Errorf("Load(%q).Name = %q, want %q", name, th.Name, want)
		}
	}
}

func TestLoadUnknownName(t *testing.T) {
	l := &Loader{ConfigDir: t.TempDir(), SystemDir: t.TempDir()}
	if _, err := l.Load("hotdog"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}
