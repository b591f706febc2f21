// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shot

import (
	"log/slog"

	"cogentcore.org/previs/xyz"
)

// SubjectRule frames the head of the primary actor alone.
// The camera keeps its bearing toward the head and is turned to look
// at it, backed off so that the head fills the field of view.
type SubjectRule struct {
	Base

	// Intent is the shot being composed.
	Intent Intent

	// Options are the rule settings.
	Options Options
}

// NewSubjectRule returns a new [SubjectRule] placing the given camera.
func NewSubjectRule(cam *xyz.Camera, in Intent, opts Options) *SubjectRule {
	return &SubjectRule{Base: Base{Center: in.FocusedCenter, Camera: cam}, Intent: in, Options: opts}
}

func (sr *SubjectRule) Apply(sc *xyz.Scene) (Placement, error) {
	if err := sr.Prepare(); err != nil {
		return Placement{}, err
	}
	prim, err := primary(sc, sr.Intent, nil)
	if err != nil {
		return Placement{}, err
	}
	ps := &PointSet{}
	if err := ps.AddJoint(prim, xyz.Head, sr.Options.PrimaryAttachments); err != nil {
		slog.Warn("shot: subject rule aborted", "shot", sr.Intent.Name, "err", err)
		return Placement{}, err
	}
	vol := NewVolume(ps.Points)
	if err := vol.Framable(sr.Options.HeadRadius); err != nil {
		return Placement{}, err
	}
	sp := groupSphere(&vol, sr.Options.HeadRadius)
	st := solveLookAt(sr.Camera, sp.Center, sp.Radius)
	return sr.commit(st, sp, []*xyz.Actor{prim}, ps.Len()), nil
}
