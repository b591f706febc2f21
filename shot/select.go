// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shot

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/previs/xyz"
)

// DistanceSquared returns the squared distance between a and b
// in this plane, ignoring the third coordinate.
func (pl Planes) DistanceSquared(a, b math32.Vector3) float32 {
	dx := a.X - b.X
	var d float32
	switch pl {
	case PlaneXZ:
		d = a.Z - b.Z
	default:
		d = a.Y - b.Y
	}
	return dx*dx + d*d
}

// Elevation returns the coordinate of v that this plane ignores.
func (pl Planes) Elevation(v math32.Vector3) float32 {
	if pl == PlaneXZ {
		return v.Y
	}
	return v.Z
}

// InRange returns the candidates whose world position is strictly
// within radius of center in the given plane, in candidate order.
func InRange(center math32.Vector3, candidates []*xyz.Actor, radius float32, plane Planes) []*xyz.Actor {
	r2 := radius * radius
	var res []*xyz.Actor
	for _, ac := range candidates {
		if ac == nil {
			continue
		}
		if plane.DistanceSquared(ac.WorldPos(), center) < r2 {
			res = append(res, ac)
		}
	}
	return res
}

// Closest returns the candidate other than prim that is closest to prim
// in the given plane and strictly within radius, or nil if there is none.
// Ties go to the earlier candidate.
func Closest(prim *xyz.Actor, candidates []*xyz.Actor, radius float32, plane Planes) *xyz.Actor {
	pos := prim.WorldPos()
	var best *xyz.Actor
	bestD := radius * radius
	for _, ac := range candidates {
		if ac == nil || ac == prim || ac.ID == prim.ID {
			continue
		}
		if d := plane.DistanceSquared(ac.WorldPos(), pos); d < bestD {
			best = ac
			bestD = d
		}
	}
	return best
}
