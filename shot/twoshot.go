// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shot

import (
	"log/slog"

	"cogentcore.org/previs/xyz"
)

// TwoShotRule frames the primary actor with the closest other actor
// within the proximity radius. The camera keeps its bearing and looks
// at the center of both heads. With no other actor in range it is a
// successful no-op.
type TwoShotRule struct {
	Base

	// Intent is the shot being composed.
	Intent Intent

	// Options are the rule settings.
	Options Options

	// Candidates are the actors considered as the partner.
	// If nil, all of the actors in the scene are considered.
	Candidates []*xyz.Actor
}

// NewTwoShotRule returns a new [TwoShotRule] placing the given camera.
func NewTwoShotRule(cam *xyz.Camera, in Intent, opts Options, candidates []*xyz.Actor) *TwoShotRule {
	return &TwoShotRule{Base: Base{Center: in.FocusedCenter, Camera: cam}, Intent: in, Options: opts, Candidates: candidates}
}

func (tr *TwoShotRule) Apply(sc *xyz.Scene) (Placement, error) {
	if err := tr.Prepare(); err != nil {
		return Placement{}, err
	}
	prim, err := primary(sc, tr.Intent, tr.Candidates)
	if err != nil {
		return Placement{}, err
	}
	cands := candidateActors(sc, tr.Candidates, prim, true)
	partner := Closest(prim, cands, tr.Options.Radius, tr.Options.Plane)
	if partner == nil {
		pl := tr.unchanged()
		pl.InRange = []string{prim.ID}
		slog.Debug("shot: two shot has no partner in range", "shot", tr.Intent.Name, "primary", prim.ID)
		return pl, nil
	}
	pair := []*xyz.Actor{prim, partner}
	ps := &PointSet{}
	err = ps.AddJoint(partner, xyz.Neck, tr.Options.CompanionAttachments)
	if err == nil {
		err = ps.AddJoint(prim, xyz.Head, tr.Options.PrimaryAttachments)
	}
	if err != nil {
		slog.Warn("shot: two shot rule aborted", "shot", tr.Intent.Name, "err", err)
		return Placement{}, err
	}
	vol := NewVolume(ps.Points)
	if err := vol.Framable(tr.Options.HeadRadius); err != nil {
		return Placement{}, err
	}
	sp := groupSphere(&vol, tr.Options.HeadRadius)
	slog.Debug("shot: two shot", "shot", tr.Intent.Name, "primary", prim.ID, "partner", partner.ID, "sphere", sp)
	st := solveLookAt(tr.Camera, sp.Center, sp.Radius)
	return tr.commit(st, sp, pair, ps.Len()), nil
}
