// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// ObjectTypes are the kinds of non-character objects in a scene.
type ObjectTypes int32 //enums:enum

const (
	// Object is a generic model object.
	Object ObjectTypes = iota

	// Light is a light source.
	Light

	// Volume is a volumetric effect.
	Volume

	// Image is a flat image plane.
	Image
)

// Actor is a character in the scene, with a skeletal rig.
type Actor struct {

	// ID uniquely identifies the actor in the scene.
	ID string

	// Name is the user-visible name of the actor.
	Name string

	// Pose is the root pose of the actor in the scene.
	Pose Pose

	// Rig is the skeletal rig; nil for actors without a skinned mesh.
	Rig *Rig
}

// NewActor returns a new actor with the given id, at the given position,
// with an empty rig.
func NewActor(id string, pos math32.Vector3) *Actor {
	ac := &Actor{ID: id, Name: id, Rig: &Rig{}}
	ac.Pose.Pos = pos
	ac.Pose.Defaults()
	return ac
}

// WorldPos returns the world position of the actor,
// as of the last [Scene.UpdateWorld].
func (ac *Actor) WorldPos() math32.Vector3 {
	return ac.Pose.WorldPos()
}

// UpdateWorld updates the world matrices of the actor and its rig.
func (ac *Actor) UpdateWorld() error {
	ac.Pose.UpdateMatrix()
	ac.Pose.UpdateWorldMatrix(nil)
	if ac.Rig == nil {
		return nil
	}
	if err := ac.Rig.updateWorld(&ac.Pose.WorldMatrix); err != nil {
		return fmt.Errorf("actor %q: %w", ac.ID, err)
	}
	return nil
}

// Prop is a non-character object in the scene.
type Prop struct {

	// ID uniquely identifies the prop in the scene.
	ID string

	// Name is the user-visible name of the prop.
	Name string

	// Type is the kind of object.
	Type ObjectTypes

	// Pose is the pose of the prop in the scene.
	Pose Pose
}

// Scene is a read-only snapshot of everything shot composition needs
// to know about a scene: the actors with their rigs, the other objects,
// and the stored cameras. Rules never modify a Scene.
type Scene struct {

	// Actors are the characters in the scene.
	Actors []*Actor

	// Props are the non-character objects in the scene.
	Props []*Prop

	// Cameras are the stored scene cameras.
	Cameras []*CameraRecord

	// ActiveCamera is the ID of the camera the large view looks through.
	ActiveCamera string
}

// NewScene returns a new empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AddActor adds the given actor to the scene and returns it.
func (sc *Scene) AddActor(ac *Actor) *Actor {
	sc.Actors = append(sc.Actors, ac)
	return ac
}

// AddProp adds a new prop of the given type at the given position.
func (sc *Scene) AddProp(id string, typ ObjectTypes, pos math32.Vector3) *Prop {
	pr := &Prop{ID: id, Name: id, Type: typ}
	pr.Pose.Pos = pos
	pr.Pose.Defaults()
	sc.Props = append(sc.Props, pr)
	return pr
}

// ActorByID returns the actor with the given id, or nil.
func (sc *Scene) ActorByID(id string) *Actor {
	for _, ac := range sc.Actors {
		if ac.ID == id {
			return ac
		}
	}
	return nil
}

// CameraByID returns the camera record with the given id, or nil.
func (sc *Scene) CameraByID(id string) *CameraRecord {
	for _, cr := range sc.Cameras {
		if cr.ID == id {
			return cr
		}
	}
	return nil
}

// Active returns the active camera record, falling back on the first
// camera when ActiveCamera is not set. It returns nil if there are no cameras.
func (sc *Scene) Active() *CameraRecord {
	if cr := sc.CameraByID(sc.ActiveCamera); cr != nil {
		return cr
	}
	if len(sc.Cameras) > 0 {
		return sc.Cameras[0]
	}
	return nil
}

// UpdateWorld recomputes the world matrices of all actors, joints,
// attachments and props, parents before children. It must be called
// after the scene is built or edited and before shots are computed.
func (sc *Scene) UpdateWorld() error {
	var errs []error
	for _, ac := range sc.Actors {
		if err := ac.UpdateWorld(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, pr := range sc.Props {
		pr.Pose.UpdateMatrix()
		pr.Pose.UpdateWorldMatrix(nil)
	}
	return errors.Join(errs...)
}
