// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"sync"

	"cogentcore.org/core/math32"
)

// Camera defines the properties of the camera.
// The camera is always a root of the scene, so its local pose
// is also its world pose.
//
// Shot rules mutate a Camera in place through several steps, so
// callers must not read or write a Camera while a rule is being
// applied to it, and overlapping rule applications on the same
// Camera must be serialized.
type Camera struct {

	// overall orientation and direction of the camera, relative to pointing at negative Z axis with up (positive Y) direction
	Pose Pose

	// mutex protecting camera data
	CamMu sync.RWMutex `display:"-"`

	// target location for the camera; where it is pointing at; defaults to the origin,
	// and is reset by a call to LookAt method
	Target math32.Vector3

	// up direction for camera; which way is up; defaults to positive Y axis,
	// and is reset by call to LookAt method
	UpDir math32.Vector3

	// default is a Perspective camera; set this to make it Orthographic instead,
	// in which case the view includes the volume specified by OrthoFrame.
	Ortho bool

	// OrthoFrame is the view volume of an orthographic camera.
	OrthoFrame OrthoFrame

	// field of view in degrees
	FOV float32 `default:"30"`

	// aspect ratio (width/height)
	Aspect float32 `default:"1.5"`

	// near plane z coordinate
	Near float32 `default:"0.01"`

	// far plane z coordinate
	Far float32 `default:"1000"`

	// view matrix (inverse of the Pose.WorldMatrix)
	ViewMatrix math32.Matrix4 `display:"-"`
}

// OrthoFrame is the view volume of an orthographic camera,
// in camera coordinates.
type OrthoFrame struct {
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
	Near   float32
	Far    float32
}

// Width returns the horizontal extent of the frame.
func (of OrthoFrame) Width() float32 {
	return of.Right - of.Left
}

// Height returns the vertical extent of the frame.
func (of OrthoFrame) Height() float32 {
	return of.Top - of.Bottom
}

// NewCamera returns a new perspective camera with default settings,
// looking at the origin from 0,0,10.
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

// Defaults sets the default camera parameters and pose.
func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Aspect = 1.5
	cm.Near = .01
	cm.Far = 1000
	cm.DefaultPose()
}

// DefaultPose resets the camera pose to default location and orientation, looking
// at the origin from 0,0,10, with up Y axis
func (cm *Camera) DefaultPose() {
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 10)
	cm.LookAtOrigin()
}

// UpdateMatrix updates the local, world and view matrices from the pose.
// It must be called after any change of position or rotation before
// the new camera state is considered authoritative.
func (cm *Camera) UpdateMatrix() {
	cm.CamMu.Lock()
	defer cm.CamMu.Unlock()

	cm.Pose.UpdateMatrix()
	cm.Pose.UpdateWorldMatrix(nil)
	cm.ViewMatrix.SetInverse(&cm.Pose.WorldMatrix)
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.CamMu.Lock()
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
	cm.CamMu.Unlock()
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at origin with Y axis pointing Up (i.e., standard)
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// Position returns the camera position.
func (cm *Camera) Position() math32.Vector3 {
	cm.CamMu.RLock()
	defer cm.CamMu.RUnlock()
	return cm.Pose.Pos
}

// SetPosition sets the camera position. Call UpdateMatrix afterwards.
func (cm *Camera) SetPosition(pos math32.Vector3) {
	cm.CamMu.Lock()
	cm.Pose.Pos = pos
	cm.CamMu.Unlock()
}

// Forward returns the unit direction the camera is looking in,
// in world coordinates (the rotated negative Z axis).
func (cm *Camera) Forward() math32.Vector3 {
	cm.CamMu.RLock()
	defer cm.CamMu.RUnlock()
	q := cm.Pose.Quat
	if q.IsNil() {
		q.SetIdentity()
	}
	return math32.Vec3(0, 0, -1).MulQuat(q).Normal()
}

// RotateOnAxis rotates the camera in place around the given axis,
// expressed in camera local coordinates, by the given angle in radians.
// Call UpdateMatrix afterwards.
func (cm *Camera) RotateOnAxis(axis math32.Vector3, angle float32) {
	cm.CamMu.Lock()
	cm.Pose.RotateOnAxisRad(axis.X, axis.Y, axis.Z, angle)
	cm.CamMu.Unlock()
}

// CameraState is a copy of the mutable parts of a [Camera],
// used to restore a camera when a multi-step update is abandoned.
type CameraState struct {
	Pos    math32.Vector3
	Quat   math32.Quat
	Target math32.Vector3
	UpDir  math32.Vector3
	FOV    float32
}

// State returns a copy of the current camera state.
func (cm *Camera) State() CameraState {
	cm.CamMu.RLock()
	defer cm.CamMu.RUnlock()
	return CameraState{Pos: cm.Pose.Pos, Quat: cm.Pose.Quat, Target: cm.Target, UpDir: cm.UpDir, FOV: cm.FOV}
}

// SetState restores the given camera state and updates the matrices.
func (cm *Camera) SetState(st CameraState) {
	cm.CamMu.Lock()
	cm.Pose.Pos = st.Pos
	cm.Pose.Quat = st.Quat
	cm.Target = st.Target
	cm.UpDir = st.UpDir
	cm.FOV = st.FOV
	cm.CamMu.Unlock()
	cm.UpdateMatrix()
}

// Clone returns a new camera with the same settings and pose,
// which can be manipulated independently of this one.
func (cm *Camera) Clone() *Camera {
	cm.CamMu.RLock()
	nc := &Camera{
		Pose:       cm.Pose,
		Target:     cm.Target,
		UpDir:      cm.UpDir,
		Ortho:      cm.Ortho,
		OrthoFrame: cm.OrthoFrame,
		FOV:        cm.FOV,
		Aspect:     cm.Aspect,
		Near:       cm.Near,
		Far:        cm.Far,
		ViewMatrix: cm.ViewMatrix,
	}
	cm.CamMu.RUnlock()
	return nc
}

// CameraRecord is a camera as stored with the scene objects:
// a position in scene coordinates where Z is up, and
// tilt / rotation / roll angles in radians.
type CameraRecord struct {

	// ID uniquely identifies the camera in the scene.
	ID string `yaml:"id"`

	// Name is the user-visible name of the camera.
	Name string `yaml:"name,omitempty"`

	// X is the position along the scene X axis.
	X float32 `yaml:"x"`

	// Y is the position along the scene depth axis.
	Y float32 `yaml:"y"`

	// Z is the height above the ground.
	Z float32 `yaml:"z"`

	// Tilt is the rotation about the camera X axis, in radians.
	Tilt float32 `yaml:"tilt"`

	// Rotation is the rotation about the vertical axis, in radians.
	Rotation float32 `yaml:"rotation"`

	// Roll is the rotation about the view axis, in radians.
	Roll float32 `yaml:"roll"`

	// FOV is the vertical field of view in degrees.
	FOV float32 `yaml:"fov"`

	// Locked cameras are not moved by interactive tools.
	Locked bool `yaml:"locked,omitempty"`
}
