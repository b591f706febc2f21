// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shot composes camera shots: given a scene snapshot and a shot
// intent, a [Rule] computes a new camera position and orientation that
// keeps the relevant subjects in frame.
//
// Rules run synchronously and are not reentrant: a rule writes its
// camera in place, so overlapping rule applications on the same camera
// must be serialized by the caller, and the camera must not be read
// while a rule is being applied to it.
package shot

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/previs/xyz"
)

// Rule is a camera framing strategy for one kind of shot.
type Rule interface {

	// Apply computes the camera placement for the shot in the given scene
	// and writes it to the rule's camera, with its matrices updated.
	// If the shot does not call for a camera move, the camera is left
	// untouched and the returned Placement has Applied == false.
	// If an error is returned the camera has not been modified.
	Apply(sc *xyz.Scene) (Placement, error)
}

// Intent describes the shot to compose.
type Intent struct {

	// Name identifies the shot for the user.
	Name string `yaml:"name,omitempty"`

	// Kind is the kind of shot, which selects the rule.
	Kind ShotKinds `yaml:"kind"`

	// PrimaryActor is the ID of the actor the shot is built around.
	PrimaryActor string `yaml:"primary"`

	// FocusedCenter is the point the shot is built around.
	FocusedCenter math32.Vector3 `yaml:"center"`

	// Radius overrides [Options.Radius] for this shot when positive.
	Radius float32 `yaml:"radius,omitempty"`
}

// Placement is the result of applying a [Rule].
type Placement struct {

	// Applied is whether the camera was moved.
	Applied bool

	// Position is the camera position after the rule.
	Position math32.Vector3

	// Orientation is the camera rotation after the rule.
	Orientation math32.Quat

	// Sphere is the framing sphere around the points of interest.
	Sphere math32.Sphere

	// InRange are the IDs of the actors that were framed.
	InRange []string

	// NumPoints is the number of points of interest.
	NumPoints int
}

// Base holds the state shared by all rules: the focused center and
// the camera to place. Every rule embeds a Base and calls [Base.Prepare]
// before doing anything else in its Apply method.
type Base struct {

	// Center is the focused center the shot is built around.
	Center math32.Vector3

	// Camera is the camera the rule places.
	Camera *xyz.Camera

	runs int
}

// Prepare is the first step of every Apply: it records the run and
// validates the camera, returning an error if the rule cannot be applied.
func (b *Base) Prepare() error {
	b.runs++
	if b.Camera == nil {
		return ErrNilCamera
	}
	return ValidateFOV(b.Camera.FOV)
}

// Applied returns whether the rule has been applied at least once.
func (b *Base) Applied() bool {
	return b.runs > 0
}

// Runs returns the number of times the rule has been applied.
func (b *Base) Runs() int {
	return b.runs
}

// unchanged returns a placement describing the current camera,
// for rules that leave the camera untouched.
func (b *Base) unchanged() Placement {
	st := b.Camera.State()
	return Placement{Position: st.Pos, Orientation: st.Quat}
}

// NewRule returns the rule for the kind of shot in the given intent,
// placing the given camera. If candidates is nil the rule considers
// all actors of the scene it is applied to.
func NewRule(cam *xyz.Camera, in Intent, opts Options, candidates []*xyz.Actor) (Rule, error) {
	if in.Radius > 0 {
		opts.Radius = in.Radius
	}
	switch in.Kind {
	case Area:
		return NewAreaRule(cam, in, opts, candidates), nil
	case TwoShot:
		return NewTwoShotRule(cam, in, opts, candidates), nil
	case Subject:
		return NewSubjectRule(cam, in, opts), nil
	}
	return nil, fmt.Errorf("shot %q: unknown shot kind %v", in.Name, in.Kind)
}

// primary returns the primary actor of the intent, looking in the
// scene and then in the candidates.
func primary(sc *xyz.Scene, in Intent, candidates []*xyz.Actor) (*xyz.Actor, error) {
	if sc != nil {
		if ac := sc.ActorByID(in.PrimaryActor); ac != nil {
			return ac, nil
		}
	}
	for _, ac := range candidates {
		if ac.ID == in.PrimaryActor {
			return ac, nil
		}
	}
	return nil, fmt.Errorf("primary actor %q: %w", in.PrimaryActor, ErrUnknownActor)
}

// candidateActors returns the explicit candidates if any, or else all
// actors of the scene, leaving out the primary actor if requested.
func candidateActors(sc *xyz.Scene, candidates []*xyz.Actor, prim *xyz.Actor, exclude bool) []*xyz.Actor {
	if candidates == nil && sc != nil {
		candidates = sc.Actors
	}
	if !exclude {
		return candidates
	}
	res := make([]*xyz.Actor, 0, len(candidates))
	for _, ac := range candidates {
		if ac == prim || ac.ID == prim.ID {
			continue
		}
		res = append(res, ac)
	}
	return res
}

// actorIDs returns the IDs of the given actors.
func actorIDs(acs []*xyz.Actor) []string {
	ids := make([]string, len(acs))
	for i, ac := range acs {
		ids[i] = ac.ID
	}
	return ids
}
