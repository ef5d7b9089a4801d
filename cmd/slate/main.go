// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command slate opens a window showing each of its arguments
// as a line of text.
package main

import (
	"os"

	"cogentcore.org/slate/app"
	"cogentcore.org/slate/config"
	"cogentcore.org/slate/widget"
	"github.com/spf13/cobra"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags are the command line flags, which override the config file.
type flags struct {
	configFile  string
	title       string
	width       int
	height      int
	font        string
	logLevel    string
	writeConfig string
}

func newCommand() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "slate [flags] [text...]",
		Short: "Show lines of text in a window",
		Long:  "Slate opens a window and draws each argument as a line of text, top to bottom. With no arguments it shows \"Hello\" and \"World\".",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(cmd)
			if err != nil {
				return err
			}
			if f.writeConfig != "" {
				return cfg.Save(f.writeConfig)
			}
			return app.Run(cfg, newView(args))
		},
		SilenceUsage: true,
	}
	fs := cmd.Flags()
	fs.StringVarP(&f.configFile, "config", "c", "", "TOML config file to open")
	fs.StringVar(&f.title, "title", "", "window title")
	fs.IntVar(&f.width, "width", 0, "window width")
	fs.IntVar(&f.height, "height", 0, "window height")
	fs.StringVar(&f.font, "font", "", "embedded font name")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&f.writeConfig, "write-config", "", "write the effective config to the given file and exit")
	return cmd
}

// config returns the config from the config file, if any, with the
// flags that were set on the command line applied over it.
func (f *flags) config(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.New()
	if f.configFile != "" {
		if err := cfg.Open(f.configFile); err != nil {
			return nil, err
		}
	}
	fs := cmd.Flags()
	if fs.Changed("title") {
		cfg.Title = f.title
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("font") {
		cfg.Font = f.font
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	return cfg, cfg.Validate()
}

// newView returns a view with a text widget for each of the given
// strings, or for "Hello" and "World" if there are none.
func newView(texts []string) *widget.View {
	if len(texts) == 0 {
		texts = []string{"Hello", "World"}
	}
	v := widget.NewView()
	for _, s := range texts {
		v.Add(widget.NewText(s))
	}
	return v
}
