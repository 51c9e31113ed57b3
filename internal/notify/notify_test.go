package notify

import (
	"image"
	"strings"
	"testing"
)

type sentNotification struct {
	title string
	body  string
	opts  sendOptions
}

func captureSends(t *testing.T) *[]sentNotification {
	t.Helper()
	var sent []sentNotification
	prev := sendFn
	sendFn = func(title, body string, opts sendOptions) error {
		sent = append(sent, sentNotification{title: title, body: body, opts: opts})
		return nil
	}
	t.Cleanup(func() { sendFn = prev })
	return &sent
}

func TestNotifierDisabledByDefault(t *testing.T) {
	sent := captureSends(t)
	n := New(DefaultPreferences())
	n.Save("/tmp/out.png")
	n.Copy("image", nil)
	if len(*sent) != 0 {
		t.Fatalf("expected no notifications, got %d", len(*sent))
	}
}

func TestNotifierSave(t *testing.T) {
	sent := captureSends(t)
	n := New(DefaultPreferences())
	n.Enable(EventSave, true)
	n.Save("/tmp/out.png")
	if len(*sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(*sent))
	}
	got := (*sent)[0]
	if got.title != "Inkover" {
		t.Errorf("title = %q, want Inkover", got.title)
	}
	if !strings.Contains(got.body, "/tmp/out.png") {
		t.Errorf("body missing path: %q", got.body)
	}
}

func TestNotifierCopyPreview(t *testing.T) {
	sent := captureSends(t)
	n := New(DefaultPreferences())
	n.Enable(EventCopy, true)
	n.Copy("", image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if len(*sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(*sent))
	}
	got := (*sent)[0]
	if !strings.Contains(got.body, "image") {
		t.Errorf("empty detail should fall back to \"image\": %q", got.body)
	}
	if got.opts.IconPath == "" {
		t.Error("expected a preview icon path")
	}
}

func TestNotifierNilReceiver(t *testing.T) {
	var n *Notifier
	n.Enable(EventSave, true) // must not panic
	n.Save("/tmp/out.png")
}

func TestLoadPreferencesEnvOverride(t *testing.T) {
	t.Setenv("INKOVER_NOTIFY_TITLE", "Custom")
	t.Setenv("INKOVER_NOTIFY_SAVE_TEXT", "Wrote %s")
	prefs := LoadPreferences()
	if prefs.Title != "Custom" {
		t.Errorf("title = %q, want Custom", prefs.Title)
	}
	if prefs.Events[EventSave].Template != "Wrote %s" {
		t.Errorf("save template = %q", prefs.Events[EventSave].Template)
	}
	if prefs.Events[EventCopy].Template == "" {
		t.Error("copy template should keep its default")
	}
}
