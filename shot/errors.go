// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shot

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// The errors returned by rules wrap one of these, so callers can
// test for them with [errors.Is]. A rule that returns an error
// has not modified its camera.
var (
	// ErrMissingRigJoint is returned when an actor lacks a joint
	// required by a rule (Head for the primary actor, Neck for the others).
	ErrMissingRigJoint = errors.New("subject missing required rig joint")

	// ErrDegenerateBoundingVolume is returned when the points of interest
	// are empty or do not span a sphere with positive radius.
	ErrDegenerateBoundingVolume = errors.New("degenerate bounding volume")

	// ErrInvalidFieldOfView is returned when the camera field of view
	// is not strictly between 0 and 180 degrees.
	ErrInvalidFieldOfView = errors.New("invalid field of view")

	// ErrUnknownActor is returned when the primary actor of a shot
	// is not in the scene.
	ErrUnknownActor = errors.New("unknown actor")

	// ErrNilCamera is returned when a rule has no camera to place.
	ErrNilCamera = errors.New("rule has no camera")
)

// ValidateFOV returns an error wrapping [ErrInvalidFieldOfView]
// if the given field of view in degrees cannot be used to compute
// a fill distance.
func ValidateFOV(fov float32) error {
	if math32.IsNaN(fov) || math32.IsInf(fov, 0) || fov <= 0 || fov >= 180 {
		return fmt.Errorf("field of view %g: %w", fov, ErrInvalidFieldOfView)
	}
	return nil
}
