// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shot

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/previs/xyz"
)

// PointSet is the set of points of interest of one rule application,
// sampled from the joints of the framed actors.
type PointSet struct {
	Points []math32.Vector3
}

// Add adds the given points.
func (ps *PointSet) Add(pts ...math32.Vector3) {
	ps.Points = append(ps.Points, pts...)
}

// Len returns the number of points.
func (ps *PointSet) Len() int {
	return len(ps.Points)
}

// AddJoint adds the world position of the joint of the actor with
// the given role, and of its attachments included by the policy.
// It returns an error wrapping [ErrMissingRigJoint] if the actor
// has no such joint, in which case nothing is added.
func (ps *PointSet) AddJoint(ac *xyz.Actor, role xyz.JointRoles, policy AttachmentPolicies) error {
	jt, ok := ac.Rig.JointByRole(role)
	if !ok {
		return fmt.Errorf("actor %q has no %v joint: %w", ac.ID, role, ErrMissingRigJoint)
	}
	ps.Add(jt.WorldPos())
	for _, at := range jt.Attachments {
		if policy.Includes(at.Category) {
			ps.Add(at.Pose.WorldPos())
		}
	}
	return nil
}

// CollectPoints returns the points of interest of a group of actors:
// the Neck joint of each in-range actor, with its attachments per
// [Options.CompanionAttachments], followed by the Head joint of the
// primary actor, with its attachments per [Options.PrimaryAttachments].
func CollectPoints(prim *xyz.Actor, inRange []*xyz.Actor, opts *Options) (*PointSet, error) {
	ps := &PointSet{}
	for _, ac := range inRange {
		if err := ps.AddJoint(ac, xyz.Neck, opts.CompanionAttachments); err != nil {
			return nil, err
		}
	}
	if err := ps.AddJoint(prim, xyz.Head, opts.PrimaryAttachments); err != nil {
		return nil, err
	}
	return ps, nil
}

// Volume is the bounding volume of a set of points of interest.
type Volume struct {

	// Box is the axis-aligned bounding box of the points.
	Box math32.Box3

	// Center is the center of the box.
	Center math32.Vector3

	// Sphere is centered on the box and contains all of the points.
	Sphere math32.Sphere
}

// NewVolume returns the bounding volume of the given points.
func NewVolume(points []math32.Vector3) Volume {
	v := Volume{Box: math32.B3Empty()}
	v.Box.ExpandByPoints(points)
	if v.Box.IsEmpty() {
		v.Sphere.Radius = -1
		return v
	}
	v.Center = v.Box.Center()
	v.Sphere = v.Box.GetBoundingSphere()
	return v
}

// AreaCenter returns the center of the volume re-biased for framing:
// the top of the box for the height, and the focused center
// for the horizontal position.
func (v *Volume) AreaCenter(focused math32.Vector3) math32.Vector3 {
	return math32.Vec3(focused.X, v.Box.Max.Y, focused.Z)
}

// Framable returns an error wrapping [ErrDegenerateBoundingVolume]
// if the volume has no points, or a sphere that cannot be framed
// with a radius of at least minRadius.
func (v *Volume) Framable(minRadius float32) error {
	if v.Box.IsEmpty() {
		return fmt.Errorf("no points of interest: %w", ErrDegenerateBoundingVolume)
	}
	if !finite(v.Box.Min) || !finite(v.Box.Max) {
		return fmt.Errorf("non-finite points of interest in %v - %v: %w", v.Box.Min, v.Box.Max, ErrDegenerateBoundingVolume)
	}
	if math32.Max(v.Sphere.Radius, minRadius) <= epsilon {
		return fmt.Errorf("bounding sphere radius %g: %w", v.Sphere.Radius, ErrDegenerateBoundingVolume)
	}
	return nil
}
