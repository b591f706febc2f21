// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertVector3(t *testing.T, expected, actual math32.Vector3) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tol, "X of %v", actual)
	assert.InDelta(t, expected.Y, actual.Y, tol, "Y of %v", actual)
	assert.InDelta(t, expected.Z, actual.Z, tol, "Z of %v", actual)
}

func TestNameResolution(t *testing.T) {
	assert.Equal(t, Head, JointRoleForName("Head"))
	assert.Equal(t, Neck, JointRoleForName("Neck"))
	assert.Equal(t, OtherJoint, JointRoleForName("head"))
	assert.Equal(t, OtherJoint, JointRoleForName("Spine"))

	assert.Equal(t, Leaf, AttachmentCategoryForName("hair_leaf_01"))
	assert.Equal(t, Leaf, AttachmentCategoryForName("leaf"))
	assert.Equal(t, OtherAttachment, AttachmentCategoryForName("Leaf"))
	assert.Equal(t, OtherAttachment, AttachmentCategoryForName("hat"))

	var r JointRoles
	require.NoError(t, r.SetString("Neck"))
	assert.Equal(t, Neck, r)
	assert.Error(t, r.SetString("Elbow"))
	assert.Equal(t, "Head", Head.String())
}

func TestRigResolve(t *testing.T) {
	rg := &Rig{}
	rg.AddJoint("Hips", "", math32.Vec3(0, 1, 0))
	neck := rg.AddJoint("Neck", "Hips", math32.Vec3(0, 0.5, 0))
	head := rg.AddJoint("Head", "Neck", math32.Vec3(0, 0.1, 0))
	require.NoError(t, rg.Resolve())

	jt, ok := rg.JointByRole(Head)
	assert.True(t, ok)
	assert.Same(t, head, jt)
	jt, ok = rg.JointByRole(Neck)
	assert.True(t, ok)
	assert.Same(t, neck, jt)
	assert.Same(t, head, rg.JointByName("Head"))
	assert.Nil(t, rg.JointByName("Elbow"))

	var nilRig *Rig
	_, ok = nilRig.JointByRole(Head)
	assert.False(t, ok)

	bad := &Rig{}
	bad.AddJoint("Head", "Missing", math32.Vector3{})
	assert.Error(t, bad.Resolve())

	cyc := &Rig{}
	cyc.AddJoint("A", "B", math32.Vector3{})
	cyc.AddJoint("B", "A", math32.Vector3{})
	assert.Error(t, cyc.Resolve())
}

func TestSceneUpdateWorld(t *testing.T) {
	sc := NewScene()
	ac := sc.AddActor(NewActor("alice", math32.Vec3(2, 0, 3)))
	ac.Pose.SetAxisRotation(0, 1, 0, 90)
	// children listed before parents must still update correctly
	head := ac.Rig.AddJoint("Head", "Neck", math32.Vec3(0, 0.2, 0))
	ac.Rig.AddJoint("Neck", "", math32.Vec3(0, 1.5, 0))
	leaf := head.AddAttachment("hair_leaf", math32.Vec3(0, 0, 1))
	sc.AddProp("lamp", Light, math32.Vec3(-1, 0, 0))
	require.NoError(t, sc.UpdateWorld())

	assertVector3(t, math32.Vec3(2, 0, 3), ac.WorldPos())
	assertVector3(t, math32.Vec3(2, 1.7, 3), head.WorldPos())
	// rotating the actor 90 degrees about Y turns local +Z into world +X
	assertVector3(t, math32.Vec3(3, 1.7, 3), leaf.Pose.WorldPos())
	assert.Equal(t, Leaf, leaf.Category)
	assertVector3(t, math32.Vec3(-1, 0, 0), sc.Props[0].Pose.WorldPos())

	assert.Same(t, ac, sc.ActorByID("alice"))
	assert.Nil(t, sc.ActorByID("bob"))
}

func TestCamera(t *testing.T) {
	cm := NewCamera()
	assertVector3(t, math32.Vec3(0, 0, 10), cm.Position())
	assertVector3(t, math32.Vec3(0, 0, -1), cm.Forward())
	assertVector3(t, math32.Vec3(0, 0, 10), cm.Pose.WorldPos())

	st := cm.State()

	// pitch up around the local X axis
	cm.RotateOnAxis(math32.Vec3(1, 0, 0), math32.Pi/2)
	cm.UpdateMatrix()
	assertVector3(t, math32.Vec3(0, 1, 0), cm.Forward())

	cm.SetPosition(math32.Vec3(1, 2, 3))
	cm.UpdateMatrix()
	assertVector3(t, math32.Vec3(1, 2, 3), cm.Pose.WorldPos())
	// the view matrix takes the camera position to the origin
	assertVector3(t, math32.Vector3{}, math32.Vec3(1, 2, 3).MulMatrix4(&cm.ViewMatrix))

	cl := cm.Clone()
	cl.SetPosition(math32.Vec3(9, 9, 9))
	assertVector3(t, math32.Vec3(1, 2, 3), cm.Position())

	cm.SetState(st)
	assertVector3(t, math32.Vec3(0, 0, 10), cm.Position())
	assertVector3(t, math32.Vec3(0, 0, -1), cm.Forward())

	cm.LookAt(math32.Vec3(10, 0, 10), math32.Vector3{})
	assertVector3(t, math32.Vec3(1, 0, 0), cm.Forward())
	assertVector3(t, math32.Vec3(0, 1, 0), cm.UpDir)

	of := OrthoFrame{Left: -2, Right: 3, Top: 4, Bottom: -1}
	assert.Equal(t, float32(5), of.Width())
	assert.Equal(t, float32(5), of.Height())
}
