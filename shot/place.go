// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shot

import (
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/previs/xyz"
)

// epsilon is the length below which a direction is treated as zero.
const epsilon = float32(1e-6)

// finite returns whether no component of v is NaN or infinite.
func finite(v math32.Vector3) bool {
	for _, c := range []float32{v.X, v.Y, v.Z} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// angleBetween returns the unsigned angle in radians between a and b,
// in the range 0 to Pi. It is 0 if either vector has zero length.
func angleBetween(a, b math32.Vector3) float32 {
	d := a.Length() * b.Length()
	if d == 0 {
		return 0
	}
	return math32.Acos(math32.Clamp(a.Dot(b)/d, -1, 1))
}

// FillDistance returns the distance from the center of a sphere of the
// given radius at which it exactly fills the given vertical field of
// view in degrees. The field of view must be valid per [ValidateFOV].
func FillDistance(radius, fov float32) float32 {
	return radius / math32.Tan(math32.DegToRad(fov/2))
}

// RotationAxis returns the axis used to turn the camera from the
// focused center toward the area center: the normalized direction from
// area to focused center with its X and Y swapped and Z zeroed.
// It returns false if there is no such direction.
func RotationAxis(focused, area math32.Vector3) (math32.Vector3, bool) {
	d := focused.Sub(area)
	if d.Length() <= epsilon {
		return math32.Vector3{}, false
	}
	d = d.Normal()
	ax := math32.Vec3(d.Y, d.X, 0)
	if ax.Length() <= epsilon {
		return math32.Vector3{}, false
	}
	return ax.Normal(), true
}

// solveArea computes the group framing of the volume on a copy of
// the camera, turning it from the focused center up toward the area
// center and backing it off along its view axis to the fill distance.
func solveArea(cam *xyz.Camera, focused math32.Vector3, vol *Volume) xyz.CameraState {
	cl := cam.Clone()
	pos := cl.Position()
	area := vol.AreaCenter(focused)
	angle := angleBetween(focused.Sub(pos), area.Sub(pos))
	if axis, ok := RotationAxis(focused, area); ok && angle != 0 {
		cl.RotateOnAxis(axis, angle)
	}
	cl.UpdateMatrix()
	back := cl.Forward().Negate()
	h := FillDistance(vol.Sphere.Radius, cl.FOV)
	cl.SetPosition(vol.Sphere.Center.Add(back.MulScalar(h)))
	cl.UpdateMatrix()
	slog.Debug("shot: area solve", "area", area, "angle", math32.RadToDeg(angle), "distance", h)

	st := cl.State()
	st.Target = vol.Sphere.Center
	return st
}

// solveLookAt computes a framing that looks at the sphere center from
// the direction of the current camera position, backed off to the fill
// distance of the given radius. If the camera is at the center, the
// current view direction is kept.
func solveLookAt(cam *xyz.Camera, center math32.Vector3, radius float32) xyz.CameraState {
	cl := cam.Clone()
	dir := center.Sub(cl.Position())
	if dir.Length() <= epsilon {
		dir = cl.Forward()
	}
	h := FillDistance(radius, cl.FOV)
	cl.SetPosition(center.Sub(dir.Normal().MulScalar(h)))
	up := cl.UpDir
	if up == (math32.Vector3{}) {
		up = math32.Vec3(0, 1, 0)
	}
	cl.LookAt(center, up)
	slog.Debug("shot: look-at solve", "center", center, "distance", h)
	return cl.State()
}

// commit writes the solved state to the rule's camera and returns
// the resulting placement.
func (b *Base) commit(st xyz.CameraState, sphere math32.Sphere, inRange []*xyz.Actor, npts int) Placement {
	b.Camera.SetState(st)
	pl := Placement{
		Applied:     true,
		Position:    st.Pos,
		Orientation: st.Quat,
		Sphere:      sphere,
		InRange:     actorIDs(inRange),
		NumPoints:   npts,
	}
	slog.Debug("shot: camera placed", "position", pl.Position, "orientation", pl.Orientation, "sphere", sphere)
	return pl
}
