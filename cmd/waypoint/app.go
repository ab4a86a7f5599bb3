package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/iw2rmb/waypoint"
	"github.com/iw2rmb/waypoint/editor"
	"github.com/iw2rmb/waypoint/internal/config"
	"github.com/iw2rmb/waypoint/internal/logging"
)

const appName = "waypoint"

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      appName,
		Usage:     "view files and jump back and forth between distant cursor positions",
		ArgsUsage: "FILE...",
		Version:   waypoint.Version(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file (default: $" + config.EnvConfigPath + " or <user config dir>/waypoint/config.yaml)",
			},
			&cli.IntFlag{
				Name:  "space-barrier",
				Usage: "minimum line distance for a cursor move to be recorded",
			},
			&cli.IntFlag{
				Name:  "history-limit",
				Usage: "maximum number of positions kept per file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "write logs to this file",
			},
		},
		Action: run,
	}
}

// overrides are settings given on the command line. They win over the
// environment, which wins over the config file.
type overrides struct {
	spaceBarrier *int
	historyLimit *int
	logLevel     *string
	logFile      *string
}

func overridesFrom(cmd *cli.Command) overrides {
	var o overrides
	if cmd.IsSet("space-barrier") {
		v := cmd.Int("space-barrier")
		o.spaceBarrier = &v
	}
	if cmd.IsSet("history-limit") {
		v := cmd.Int("history-limit")
		o.historyLimit = &v
	}
	if cmd.IsSet("log-level") {
		v := cmd.String("log-level")
		o.logLevel = &v
	}
	if cmd.IsSet("log-file") {
		v := cmd.String("log-file")
		o.logFile = &v
	}
	return o
}

// apply layers the environment and then o over c and validates the result.
func (o overrides) apply(c config.Config) (config.Config, error) {
	c = c.WithEnv()
	if o.spaceBarrier != nil {
		c.History.SpaceBarrier = o.spaceBarrier
	}
	if o.historyLimit != nil {
		c.History.Limit = o.historyLimit
	}
	if o.logLevel != nil {
		c.Logging.Level = o.logLevel
	}
	if o.logFile != nil {
		c.Logging.File = o.logFile
		if os.Getenv(logging.EnvLogSink) == "" {
			sink := string(logging.SinkFile)
			c.Logging.Sink = &sink
		}
	}
	if err := c.Validate(); err != nil {
		return config.Config{}, err
	}
	return c, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		return cli.Exit("no files given; usage: waypoint [flags] FILE...", 2)
	}

	path := cmd.String("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	flags := overridesFrom(cmd)
	fileCfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg, err := flags.apply(fileCfg)
	if err != nil {
		return err
	}

	closeLog, err := logging.Init(cfg.Logging, logging.Options{App: appName, Version: waypoint.Version()})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	docs, err := readDocuments(files)
	if err != nil {
		return err
	}
	slog.Info("waypoint: starting", "files", len(docs), "config", path,
		"space_barrier", cfg.Limits().SpaceBarrier, "history_limit", cfg.Limits().HistoryLimit)

	live := config.NewLive(cfg)
	ed := editor.New(editor.Config{
		Documents:    docs,
		Limits:       live.Limits,
		ShowLineNums: true,
		Style:        editor.DefaultStyle(),
		Clipboard:    systemClipboard{},
		Logger:       slog.Default(),
	})
	p := tea.NewProgram(newHost(ed), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	w, err := config.Watch(ctx, path, func(c config.Config, err error) {
		if err == nil {
			c, err = flags.apply(c)
		}
		if err != nil {
			slog.Warn("waypoint: config reload failed", "path", path, "err", err)
			p.Send(reloadMsg{err: err})
			return
		}
		live.Store(c)
		slog.Info("waypoint: config reloaded", "path", path,
			"space_barrier", c.Limits().SpaceBarrier, "history_limit", c.Limits().HistoryLimit)
		p.Send(reloadMsg{})
	})
	if err != nil {
		slog.Warn("waypoint: config watch disabled", "path", path, "err", err)
	} else {
		defer func() { _ = w.Close() }()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func readDocuments(paths []string) ([]editor.Document, error) {
	docs := make([]editor.Document, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		docs = append(docs, editor.Document{Name: path, Text: string(data)})
	}
	return docs, nil
}
