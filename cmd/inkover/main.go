package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/inkover/internal/config"
	"github.com/example/inkover/internal/notify"
	"github.com/example/inkover/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	saveAlerts  bool
	copyAlerts  bool
	themeName   string
	activeTheme *theme.Theme
	configPath  string
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:     program,
		notifier:    r.notifier,
		config:      r.config,
		saveAlerts:  r.saveAlerts,
		copyAlerts:  r.copyAlerts,
		themeName:   r.themeName,
		activeTheme: r.activeTheme,
	}
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("inkover", flag.ExitOnError),
		program:  "inkover",
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving an image")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.StringVar(&r.themeName, "theme", "", "overlay chrome theme (default, dark, high_contrast, or a .theme file)")
	r.fs.StringVar(&r.configPath, "config", "", "load configuration from this file")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.configPath != "" {
		cfg, err := config.NewLoader(version, r.configPath).Load()
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", r.configPath, err)
		}
		// Notify flags keep their CLI values when given explicitly.
		set := map[string]bool{}
		r.fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["notify-save"] {
			r.saveAlerts = cfg.Notify.Save
		}
		if !set["notify-copy"] {
			r.copyAlerts = cfg.Notify.Copy
		}
		r.config = cfg
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}

	// Theme precedence: CLI > environment > config file.
	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("INKOVER_THEME")
	}
	if themeName == "" && r.config != nil {
		themeName = r.config.Theme
	}
	t, themeErr := theme.NewLoader().Load(themeName)
	if themeErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", themeName, themeErr)
		t = theme.Default()
	}
	r.activeTheme = t

	// Launching with no command opens the overlay.
	cmdName := "run"
	subArgs := []string{}
	if r.fs.NArg() > 0 {
		cmdName = r.fs.Arg(0)
		subArgs = r.fs.Args()[1:]
	}

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "run":
		cmd, err = parseRunCmd(subArgs, r)
	case "monitors":
		cmd, err = parseMonitorsCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
