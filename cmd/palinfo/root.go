// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/YindSoft/pal"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

const version = "0.1.0"

// cli carries the resolved configuration shared by all subcommands.
type cli struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "palinfo",
		Short: "Inspect and exercise the platform abstraction layer",
		Long: `palinfo prints what the platform layer detects on this machine
(OS family, heap backend, memory, preference directory) and runs each
service once so a port can be checked quickly.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate(fmt.Sprintf("palinfo version %s\n", version))

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.String("org", "ExampleOrg", "organization name for the preference path")
	flags.String("app", "ExampleApp", "application name for the preference path")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.StringP("output", "o", "text", "output format: text or json")

	for key, flag := range map[string]string{
		"org":        "org",
		"app":        "app",
		"log.level":  "log-level",
		"log.format": "log-format",
		"output":     "output",
	} {
		_ = c.v.BindPFlag(key, flags.Lookup(flag))
	}
	c.v.SetEnvPrefix("PALINFO")
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	c.v.AutomaticEnv()

	root.AddCommand(
		c.osCmd(),
		c.memoryCmd(),
		c.prefPathCmd(),
		c.heapCmd(),
		c.loadCmd(),
		c.netCmd(),
		c.msgboxCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		c.v.SetConfigFile(path)
		if err := c.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
	}

	logger, err := newLogger(cmd.ErrOrStderr(), c.v.GetString("log.level"), c.v.GetString("log.format"))
	if err != nil {
		return err
	}
	pal.SetLogger(logger)

	switch c.v.GetString("output") {
	case "text", "json":
	default:
		return errors.Newf("unknown output format %q", c.v.GetString("output"))
	}
	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	opts := slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(opts.NewTextHandler(w)), nil
	case "json":
		return slog.New(opts.NewJSONHandler(w)), nil
	}
	return nil, errors.Newf("unknown log format %q", format)
}

func (c *cli) printer(cmd *cobra.Command) *printer {
	return &printer{w: cmd.OutOrStdout(), json: c.v.GetString("output") == "json"}
}
