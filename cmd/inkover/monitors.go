package main

import (
	"flag"
	"fmt"

	"github.com/example/inkover/internal/capture"
)

var listMonitorsFn = capture.ListMonitors

type monitorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseMonitorsCmd(args []string, r *root) (*monitorsCmd, error) {
	fs := flag.NewFlagSet("monitors", flag.ExitOnError)
	c := &monitorsCmd{root: r.subcommand("monitors"), fs: fs}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *monitorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *monitorsCmd) Run() error {
	monitors, err := listMonitorsFn()
	if err != nil {
		return fmt.Errorf("failed to list monitors: %w", err)
	}
	for _, m := range monitors {
		marker := " "
		if m.Primary {
			marker = "*"
		}
		fmt.Printf("%s %d %s %dx%d+%d+%d\n", marker, m.Index, m.Name,
			m.Rect.Dx(), m.Rect.Dy(), m.Rect.Min.X, m.Rect.Min.Y)
	}
	return nil
}
