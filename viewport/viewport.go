// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewport provides the camera math of the two synchronized
// scene views: a large perspective view that looks through the active
// scene camera, and a small top-down orthographic view fitted to the
// extents of the scene.
package viewport

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/previs/xyz"
)

const (
	// TopViewHeight is the height of the top view camera above the ground.
	TopViewHeight = 900

	// Padding is added around the scene extents in the top view.
	Padding = 2

	// TopViewDepth is the half depth of the top view volume.
	TopViewDepth = 1000
)

// SyncPerspective sets the camera to look through the given scene
// camera record. Records store the height as Z, which becomes the
// camera Y, and the depth as Y, which becomes the camera Z.
// The rotation is applied as X, Y, Z Euler angles of (tilt, rotation, roll).
func SyncPerspective(cam *xyz.Camera, rec *xyz.CameraRecord) {
	cam.CamMu.Lock()
	cam.Ortho = false
	cam.Pose.Defaults()
	cam.Pose.Pos.Set(rec.X, rec.Z, rec.Y)
	cam.Pose.SetEulerRotationRad(rec.Tilt, rec.Rotation, rec.Roll)
	if rec.FOV > 0 {
		cam.FOV = rec.FOV
	}
	cam.CamMu.Unlock()
	cam.UpdateMatrix()
}

// SyncActive sets the camera to look through the active camera of the
// scene, returning an error if the scene has no cameras.
func SyncActive(cam *xyz.Camera, sc *xyz.Scene) error {
	rec := sc.Active()
	if rec == nil {
		return fmt.Errorf("viewport: scene has no cameras")
	}
	SyncPerspective(cam, rec)
	slog.Debug("viewport: perspective synced", "camera", rec.ID, "position", cam.Position(), "fov", cam.FOV)
	return nil
}

// TopView is the top-down orthographic view of a scene.
type TopView struct {

	// Center is the center of the view on the ground plane, in X and Z.
	CenterX, CenterZ float32

	// Frame is the orthographic view volume.
	Frame xyz.OrthoFrame

	// Items is the number of scene items the view was fitted to.
	Items int
}

// extents accumulates the ground plane extents of scene items.
type extents struct {
	minX, maxX, minZ, maxZ float32
	n                      int
}

func (ex *extents) add(x, z float32) {
	if ex.n == 0 {
		ex.minX, ex.maxX, ex.minZ, ex.maxZ = x, x, z, z
	} else {
		ex.minX = math32.Min(ex.minX, x)
		ex.maxX = math32.Max(ex.maxX, x)
		ex.minZ = math32.Min(ex.minZ, z)
		ex.maxZ = math32.Max(ex.maxZ, z)
	}
	ex.n++
}

func (ex *extents) pad(p float32) {
	ex.minX -= p
	ex.maxX += p
	ex.minZ -= p
	ex.maxZ += p
}

// AutofitOrtho returns the top view that shows all of the actors, props
// and cameras of the scene, padded and widened to the given aspect ratio
// (width / height; 1 if not positive). A scene with a single item gets
// extra padding, and an empty scene is treated as a single item at the origin.
// [xyz.Scene.UpdateWorld] must have been called.
func AutofitOrtho(sc *xyz.Scene, aspect float32) TopView {
	if aspect <= 0 {
		aspect = 1
	}
	ex := extents{}
	for _, ac := range sc.Actors {
		p := ac.WorldPos()
		ex.add(p.X, p.Z)
	}
	for _, pr := range sc.Props {
		p := pr.Pose.WorldPos()
		ex.add(p.X, p.Z)
	}
	for _, cr := range sc.Cameras {
		ex.add(cr.X, cr.Y)
	}
	items := ex.n
	if ex.n == 0 {
		ex.add(0, 0)
	}
	if ex.n == 1 {
		ex.pad(Padding)
	}
	ex.pad(Padding)

	w := ex.maxX - ex.minX
	h := ex.maxZ - ex.minZ
	if w/h > aspect {
		p := w/aspect - h
		ex.minZ -= p / 2
		ex.maxZ += p / 2
	} else {
		p := h*aspect - w
		ex.minX -= p / 2
		ex.maxX += p / 2
	}
	w = ex.maxX - ex.minX
	h = ex.maxZ - ex.minZ
	tv := TopView{
		CenterX: ex.minX + w/2,
		CenterZ: ex.minZ + h/2,
		Items:   items,
		Frame: xyz.OrthoFrame{
			Left:   -w / 2,
			Right:  w / 2,
			Top:    h / 2,
			Bottom: -h / 2,
			Near:   -TopViewDepth,
			Far:    TopViewDepth,
		},
	}
	slog.Debug("viewport: top view fitted", "items", items, "center", math32.Vec3(tv.CenterX, 0, tv.CenterZ), "width", w, "height", h)
	return tv
}

// ApplyTopView makes the camera an orthographic camera looking straight
// down on the given top view from [TopViewHeight].
func ApplyTopView(cam *xyz.Camera, tv TopView) {
	cam.CamMu.Lock()
	cam.Ortho = true
	cam.OrthoFrame = tv.Frame
	cam.Near = tv.Frame.Near
	cam.Far = tv.Frame.Far
	cam.Pose.Defaults()
	cam.Pose.Pos.Set(tv.CenterX, TopViewHeight, tv.CenterZ)
	cam.Pose.SetEulerRotationRad(-math32.Pi/2, 0, 0)
	cam.Target = math32.Vec3(tv.CenterX, 0, tv.CenterZ)
	cam.CamMu.Unlock()
	cam.UpdateMatrix()
}
