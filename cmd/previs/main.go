// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command previs composes the camera shots of a storyboard scene document.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/previs/config"
	"cogentcore.org/previs/scenefile"
	"cogentcore.org/previs/shot"
	"cogentcore.org/previs/viewport"
	"cogentcore.org/previs/xyz"
	"github.com/fsnotify/fsnotify"
)

// Config is the configuration information for the previs cli.
type Config struct {

	// Scene is the scene document to compose shots in.
	Scene string `posarg:"0" required:"-" default:"scene.yaml"`

	// Options is an optional TOML file of shot rule options.
	Options string `flag:"o,options"`

	// Shot is the name of the only shot to compose.
	// All of the shots in the scene document are composed if it is empty.
	Shot string `flag:"s,shot"`

	// Workers is the number of shots explored at the same time,
	// overriding the options file when positive.
	Workers int `cmd:"explore"`

	// Aspect is the width over height ratio of the top view.
	Aspect float32 `cmd:"topview" default:"1"`
}

func main() {
	opts := cli.DefaultOptions("previs", "Previs composes the camera shots of storyboard scenes.")
	cli.Run(opts, &Config{}, commands()...)
}

// commands returns the previs commands. The log verbosity is set by
// the standard -v, -vv and -q flags of [cli.Run].
func commands() []*cli.Cmd[*Config] {
	return []*cli.Cmd[*Config]{
		{Func: Frame, Name: "frame", Doc: "Frame composes the shots of the scene one at a time, each from the view of the active camera.", Root: true},
		{Func: Explore, Name: "explore", Doc: "Explore composes all of the shots of the scene at the same time."},
		{Func: Topview, Name: "topview", Doc: "Topview prints the top view fitted to the scene."},
		{Func: Watch, Name: "watch", Doc: "Watch composes the shots of the scene again each time the scene document changes."},
	}
}

// load opens the scene document and the rule options.
func load(c *Config) (*scenefile.Document, *xyz.Scene, shot.Options, error) {
	opts := shot.DefaultOptions()
	if c.Options != "" {
		var err error
		opts, err = config.Open(c.Options)
		if err != nil {
			return nil, nil, opts, err
		}
	}
	doc, err := scenefile.Open(c.Scene)
	if err != nil {
		return nil, nil, opts, err
	}
	sc, err := doc.Scene()
	if err != nil {
		return nil, nil, opts, fmt.Errorf("%s: %w", c.Scene, err)
	}
	return doc, sc, opts, nil
}

// shots returns the shots selected by the config.
func shots(c *Config, doc *scenefile.Document) ([]shot.Intent, error) {
	if c.Shot != "" {
		in, ok := doc.Shot(c.Shot)
		if !ok {
			return nil, fmt.Errorf("%s: no shot named %q", c.Scene, c.Shot)
		}
		return []shot.Intent{in}, nil
	}
	if len(doc.Shots) == 0 {
		return nil, fmt.Errorf("%s: no shots", c.Scene)
	}
	return doc.Shots, nil
}

// activeCamera returns a camera looking through the active scene camera,
// or a default camera if the scene has none.
func activeCamera(sc *xyz.Scene) *xyz.Camera {
	cam := xyz.NewCamera()
	if err := viewport.SyncActive(cam, sc); err != nil {
		slog.Warn("using default camera", "err", err)
	}
	return cam
}

// Frame composes the shots of the scene one at a time,
// each from the view of the active camera.
func Frame(c *Config) error {
	return frame(c, os.Stdout)
}

func frame(c *Config, w io.Writer) error {
	doc, sc, opts, err := load(c)
	if err != nil {
		return err
	}
	ins, err := shots(c, doc)
	if err != nil {
		return err
	}
	var errs []error
	for _, in := range ins {
		cam := activeCamera(sc)
		rl, err := shot.NewRule(cam, in, opts, nil)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pl, err := rl.Apply(sc)
		printResult(w, in, pl, err)
		if err != nil {
			errs = append(errs, fmt.Errorf("shot %q: %w", in.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Explore composes all of the shots of the scene at the same time.
func Explore(c *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return explore(ctx, c, os.Stdout)
}

func explore(ctx context.Context, c *Config, w io.Writer) error {
	doc, sc, opts, err := load(c)
	if err != nil {
		return err
	}
	ins, err := shots(c, doc)
	if err != nil {
		return err
	}
	if c.Workers > 0 {
		opts.Workers = c.Workers
	}
	res, err := shot.Explore(ctx, sc, activeCamera(sc), ins, opts)
	if err != nil {
		return err
	}
	var errs []error
	for _, r := range res {
		printResult(w, r.Intent, r.Placement, r.Err)
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("shot %q: %w", r.Intent.Name, r.Err))
		}
	}
	return errors.Join(errs...)
}

// Topview prints the top view fitted to the scene.
func Topview(c *Config) error {
	return topview(c, os.Stdout)
}

func topview(c *Config, w io.Writer) error {
	_, sc, _, err := load(c)
	if err != nil {
		return err
	}
	tv := viewport.AutofitOrtho(sc, c.Aspect)
	cam := xyz.NewCamera()
	viewport.ApplyTopView(cam, tv)
	fr := cam.OrthoFrame
	fmt.Fprintf(w, "items: %d\ncamera: %v\nframe: left %g right %g top %g bottom %g near %g far %g\n",
		tv.Items, cam.Position(), fr.Left, fr.Right, fr.Top, fr.Bottom, fr.Near, fr.Far)
	return nil
}

// Watch composes the shots of the scene again each time
// the scene document changes.
func Watch(c *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fn, err := filepath.Abs(c.Scene)
	if err != nil {
		return err
	}
	wt, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer wt.Close()
	// editors often replace the file, so watch its directory
	if err := wt.Add(filepath.Dir(fn)); err != nil {
		return err
	}
	errors.Log(frame(c, os.Stdout))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-wt.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fn || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			slog.Info("scene changed", "file", ev.Name, "op", ev.Op)
			fmt.Fprintln(os.Stdout)
			errors.Log(frame(c, os.Stdout))
		case err, ok := <-wt.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watching scene", "err", err)
		}
	}
}

// printResult prints the result of one shot.
func printResult(w io.Writer, in shot.Intent, pl shot.Placement, err error) {
	name := in.Name
	if name == "" {
		name = in.Kind.String() + ":" + in.PrimaryActor
	}
	switch {
	case err != nil:
		fmt.Fprintf(w, "%s\terror: %v\n", name, err)
	case !pl.Applied:
		fmt.Fprintf(w, "%s\tunchanged\tin range: %v\n", name, pl.InRange)
	default:
		fmt.Fprintf(w, "%s\tposition: %v\torientation: %v\tsphere: %v\tin range: %v\n",
			name, pl.Position, pl.Orientation, pl.Sphere, pl.InRange)
	}
}
