// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelbar/run.go
// Summary: Wires config, registry, terminal host and bar, then runs the event loop.

package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/framegrace/texelbar/bar"
	"github.com/framegrace/texelbar/cmd/texelbar/lifecycle"
	"github.com/framegrace/texelbar/config"
	"github.com/framegrace/texelbar/host"
	"github.com/framegrace/texelbar/host/termhost"
	"github.com/framegrace/texelbar/registry"
	"github.com/framegrace/texelbar/widgets/windowlist"
	"github.com/gdamore/tcell/v2"
)

type runOptions struct {
	Screens int
	Verbose bool
}

// quitRequest is posted by the signal watcher.
type quitRequest struct{}

func run(opts runOptions) error {
	if err := config.Err(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := config.System()
	st, err := loadSettings(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if opts.Screens > 0 {
		st.screens = opts.Screens
	}

	root, err := config.Root()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	pid := lifecycle.NewPIDFile(filepath.Join(root, "texelbar.pid"))
	if err := pid.Acquire(); err != nil {
		return err
	}
	defer func() {
		if err := pid.Release(); err != nil {
			log.Printf("TexelBar: Failed to remove PID file: %v", err)
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	logger := log.Default()
	th := termhost.New(termhost.Options{
		Screen:  screen,
		Screens: st.screens,
		Desktop: tcell.ColorNavy,
		Logger:  logger,
	})
	defer th.Close()

	b := bar.New(bar.Options{
		Version:     version,
		PanelHeight: st.panelHeight,
		Colors:      st.colors,
		Screens:     th,
		Surface:     th,
		Windows:     th,
		WindowList:  windowlist.ForScreen(th, logger),
		MaximizeKey: st.maximize,
		Logger:      logger,
	})

	reg := registry.New()
	registry.RegisterBuiltIns(reg)
	env := registry.Env{Launcher: th, Windows: th, Logger: logger}
	if err := b.AddLeft(reg.Builders(registry.DeclsFromConfig(cfg, "left"), env)...); err != nil {
		return err
	}
	if err := b.AddRight(reg.Builders(registry.DeclsFromConfig(cfg, "right"), env)...); err != nil {
		return err
	}
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
	}()

	th.Render()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			if host.ComboFromEvent(e) == st.quit {
				log.Printf("TexelBar: Quit requested")
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			if _, ok := e.Data().(quitRequest); ok {
				log.Printf("TexelBar: Received signal, shutting down")
				return nil
			}
		}

		if bev, ok := th.Translate(ev); ok {
			if opts.Verbose && bev.Type != bar.EventHover {
				log.Printf("TexelBar: Dispatching %s %v", bev.Type, bev.Payload)
			}
			consumed := b.Dispatch(bev)
			if !consumed && bev.Type == bar.EventClick {
				pt := bev.Payload.(bar.Point)
				th.FocusAt(pt.X, pt.Y)
			}
		}
		if th.Dirty() {
			th.Render()
		}
	}
}
