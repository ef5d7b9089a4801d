// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs a slate app: it opens the window described by a
// [config.Config], initializes its graphics context, and runs the
// event loop until the window is closed.
package app

import (
	"fmt"
	"log/slog"

	"cogentcore.org/slate/base/errors"
	"cogentcore.org/slate/base/logx"
	"cogentcore.org/slate/config"
	"cogentcore.org/slate/gpu"
	"cogentcore.org/slate/system"
	"cogentcore.org/slate/system/driver/desktop"
	"cogentcore.org/slate/widget"
)

// App is a configured view waiting to be run.
type App struct {

	// Config is the configuration of the app.
	Config *config.Config

	// View is the widget tree shown in the window.
	View *widget.View

	// Update, if set, is called before each frame.
	Update func()
}

// New returns a new [App] for the given config and view.
// A nil config uses [config.New].
func New(cfg *config.Config, view *widget.View) *App {
	if cfg == nil {
		cfg = config.New()
	}
	return &App{Config: cfg, View: view}
}

// Run is a shortcut for New(cfg, view).Run().
func Run(cfg *config.Config, view *widget.View) error {
	return New(cfg, view).Run()
}

// Run validates the config, sets up logging, opens the window and runs
// the event loop until the window is closed. It must be called from the
// main goroutine. Failing to initialize the window or the graphics is
// logged and returned.
func (a *App) Run() error {
	if err := a.Setup(); err != nil {
		return err
	}
	win, err := desktop.NewWindow(a.Config.Title, a.Config.Size())
	if err != nil {
		return errors.Log(err)
	}
	defer win.Destroy()

	host := system.NewHost(win, a.View)
	host.Update = a.Update
	ctx, err := gpu.Init(win, a.Config.GPUOptions())
	if err != nil {
		return errors.Log(fmt.Errorf("app: initializing graphics: %w", err))
	}
	host.Ready(ctx)
	slog.Info("running", "widgets", a.View.Root().NumChildren())
	return host.Run(win)
}

// Setup validates the config and installs the default logger at the
// configured level. It is called by [App.Run].
func (a *App) Setup() error {
	if a.View == nil {
		a.View = widget.NewView()
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}
	logx.UserLevel = errors.Log1(logx.LevelFromString(a.Config.LogLevel))
	logx.SetDefaultLogger()
	return nil
}
