// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shot

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/previs/xyz"
)

// AreaRule frames a primary actor together with all of the actors
// within the proximity radius, so that all of their heads are in frame.
// It moves the camera only for a genuine group shot, where more than
// one actor is in range; otherwise it is a successful no-op.
type AreaRule struct {
	Base

	// Intent is the shot being composed.
	Intent Intent

	// Options are the rule settings.
	Options Options

	// Candidates are the actors considered for the group.
	// If nil, all of the actors in the scene are considered.
	Candidates []*xyz.Actor
}

// NewAreaRule returns a new [AreaRule] placing the given camera.
func NewAreaRule(cam *xyz.Camera, in Intent, opts Options, candidates []*xyz.Actor) *AreaRule {
	return &AreaRule{Base: Base{Center: in.FocusedCenter, Camera: cam}, Intent: in, Options: opts, Candidates: candidates}
}

func (ar *AreaRule) Apply(sc *xyz.Scene) (Placement, error) {
	if err := ar.Prepare(); err != nil {
		return Placement{}, err
	}
	prim, err := primary(sc, ar.Intent, ar.Candidates)
	if err != nil {
		return Placement{}, err
	}
	cands := candidateActors(sc, ar.Candidates, prim, ar.Options.ExcludePrimary)
	inRange := InRange(prim.WorldPos(), cands, ar.Options.Radius, ar.Options.Plane)
	ps, err := CollectPoints(prim, inRange, &ar.Options)
	if err != nil {
		slog.Warn("shot: area rule aborted", "shot", ar.Intent.Name, "err", err)
		return Placement{}, err
	}
	vol := NewVolume(ps.Points)
	slog.Debug("shot: area rule", "shot", ar.Intent.Name, "primary", prim.ID, "inRange", actorIDs(inRange), "points", ps.Len(), "sphere", vol.Sphere)

	if len(inRange) <= 1 {
		pl := ar.unchanged()
		pl.Sphere = vol.Sphere
		pl.InRange = actorIDs(inRange)
		pl.NumPoints = ps.Len()
		return pl, nil
	}
	if err := vol.Framable(0); err != nil {
		slog.Warn("shot: area rule aborted", "shot", ar.Intent.Name, "err", err)
		return Placement{}, err
	}
	st := solveArea(ar.Camera, ar.Center, &vol)
	if !finite(st.Pos) {
		err := fmt.Errorf("camera placement %v: %w", st.Pos, ErrDegenerateBoundingVolume)
		slog.Warn("shot: area rule aborted", "shot", ar.Intent.Name, "err", err)
		return Placement{}, err
	}
	return ar.commit(st, vol.Sphere, inRange, ps.Len()), nil
}

// groupSphere returns the sphere of the volume, grown to at least
// the given radius.
func groupSphere(vol *Volume, minRadius float32) math32.Sphere {
	sp := vol.Sphere
	sp.Radius = math32.Max(sp.Radius, minRadius)
	return sp
}
