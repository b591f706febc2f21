// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shot

import (
	"context"
	"log/slog"

	"cogentcore.org/previs/xyz"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one shot evaluated by [Explore].
type Result struct {

	// Intent is the evaluated shot.
	Intent Intent

	// Camera is the copy of the base camera placed by the shot.
	Camera *xyz.Camera

	// Placement is the result of the rule, if Err is nil.
	Placement Placement

	// Err is the error returned by the rule, if any.
	Err error
}

// Explore evaluates each of the given shots on its own copy of the
// base camera, running up to [Options.Workers] rules at the same time.
// The results are in the order of the intents. A rule error is recorded
// in the result of its shot and does not stop the others; the returned
// error is only set if the world update of the scene fails or the
// context is canceled. The scene must not be modified during exploration.
func Explore(ctx context.Context, sc *xyz.Scene, base *xyz.Camera, intents []Intent, opts Options) ([]Result, error) {
	if err := sc.UpdateWorld(); err != nil {
		return nil, err
	}
	results := make([]Result, len(intents))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, in := range intents {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := &results[i]
			res.Intent = in
			res.Camera = base.Clone()
			rl, err := NewRule(res.Camera, in, opts, nil)
			if err != nil {
				res.Err = err
				return nil
			}
			res.Placement, res.Err = rl.Apply(sc)
			if res.Err != nil {
				slog.Info("shot: explore", "shot", in.Name, "err", res.Err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
