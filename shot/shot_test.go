// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shot

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/previs/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-3

func assertVector3(t *testing.T, expected, actual math32.Vector3) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tol, "X of %v", actual)
	assert.InDelta(t, expected.Y, actual.Y, tol, "Y of %v", actual)
	assert.InDelta(t, expected.Z, actual.Z, tol, "Z of %v", actual)
}

// newActor returns an actor at the given position with a Neck joint
// carrying a scarf, and a Head joint carrying a leaf and a hat.
func newActor(id string, pos math32.Vector3) *xyz.Actor {
	ac := xyz.NewActor(id, pos)
	neck := ac.Rig.AddJoint("Neck", "", math32.Vec3(0, 1.5, 0))
	head := ac.Rig.AddJoint("Head", "Neck", math32.Vec3(0, 0.2, 0))
	neck.AddAttachment("scarf", math32.Vec3(0, -0.1, 0.1))
	head.AddAttachment("hair_leaf", math32.Vec3(0, 0.15, 0))
	head.AddAttachment("hat", math32.Vec3(0, 0.3, 0))
	return ac
}

func newScene(t *testing.T, acs ...*xyz.Actor) *xyz.Scene {
	t.Helper()
	sc := xyz.NewScene()
	for _, ac := range acs {
		sc.AddActor(ac)
	}
	require.NoError(t, sc.UpdateWorld())
	return sc
}

// newCamera returns a camera at the origin looking down negative Z.
func newCamera(fov float32) *xyz.Camera {
	cm := xyz.NewCamera()
	cm.FOV = fov
	cm.SetPosition(math32.Vector3{})
	cm.Pose.Quat.SetIdentity()
	cm.UpdateMatrix()
	return cm
}

func groupScene(t *testing.T) *xyz.Scene {
	return newScene(t,
		newActor("alice", math32.Vec3(0, 0, -5)),
		newActor("bob", math32.Vec3(1, 0, -5)),
		newActor("carol", math32.Vec3(-1, 0, -5)),
	)
}

func areaIntent() Intent {
	return Intent{Name: "group", Kind: Area, PrimaryActor: "alice", FocusedCenter: math32.Vec3(0, 1.5, -5)}
}

func TestAreaGroupShot(t *testing.T) {
	sc := groupScene(t)
	cm := newCamera(50)
	ar := NewAreaRule(cm, areaIntent(), DefaultOptions(), nil)
	assert.False(t, ar.Applied())

	pl, err := ar.Apply(sc)
	require.NoError(t, err)
	assert.True(t, pl.Applied)
	assert.True(t, ar.Applied())
	assert.Equal(t, []string{"alice", "bob", "carol"}, pl.InRange)
	// three necks and scarves, plus the primary head and its leaf
	assert.Equal(t, 8, pl.NumPoints)
	assert.Greater(t, cm.Position().Length(), float32(0.1))

	h := FillDistance(pl.Sphere.Radius, 50)
	assert.InDelta(t, h, cm.Position().DistanceTo(pl.Sphere.Center), tol)
	assertVector3(t, pl.Sphere.Center.Sub(cm.Position()).Normal(), cm.Forward())
	assertVector3(t, cm.Position(), cm.Pose.WorldPos())
	assertVector3(t, pl.Position, cm.Position())
	assert.Equal(t, cm.State().Quat, pl.Orientation)

	prim := sc.ActorByID("alice")
	ps, err := CollectPoints(prim, sc.Actors, &ar.Options)
	require.NoError(t, err)
	for _, p := range ps.Points {
		assert.LessOrEqual(t, p.DistanceTo(pl.Sphere.Center), pl.Sphere.Radius+1e-4, "point %v outside %v", p, pl.Sphere)
	}
}

func TestAreaOutOfRange(t *testing.T) {
	sc := newScene(t,
		newActor("alice", math32.Vec3(0, 0, -5)),
		newActor("bob", math32.Vec3(2, 0, -5)),
	)
	cm := newCamera(50)
	before := cm.State()
	pl, err := NewAreaRule(cm, areaIntent(), DefaultOptions(), nil).Apply(sc)
	require.NoError(t, err)
	assert.False(t, pl.Applied)
	assert.Equal(t, []string{"alice"}, pl.InRange)
	assert.Equal(t, 4, pl.NumPoints)
	assert.Equal(t, before, cm.State())
	assert.Equal(t, before.Pos, pl.Position)
}

func TestAreaNoOpLaw(t *testing.T) {
	for _, x := range []float32{1.5, 2, 5, -3} {
		sc := newScene(t,
			newActor("alice", math32.Vec3(0, 0, -5)),
			newActor("bob", math32.Vec3(x, 0, -5)),
		)
		cm := newCamera(40)
		cm.LookAt(math32.Vec3(1, 2, -3), math32.Vec3(0, 1, 0))
		before := cm.State()
		pl, err := NewAreaRule(cm, areaIntent(), DefaultOptions(), nil).Apply(sc)
		require.NoError(t, err)
		assert.False(t, pl.Applied, "bob at x=%g", x)
		assert.Equal(t, before, cm.State())
	}
}

func TestAreaMissingNeck(t *testing.T) {
	bob := xyz.NewActor("bob", math32.Vec3(1, 0, -5))
	bob.Rig.AddJoint("Head", "", math32.Vec3(0, 1.7, 0))
	sc := newScene(t, newActor("alice", math32.Vec3(0, 0, -5)), bob)
	cm := newCamera(50)
	before := cm.State()
	_, err := NewAreaRule(cm, areaIntent(), DefaultOptions(), nil).Apply(sc)
	assert.ErrorIs(t, err, ErrMissingRigJoint)
	assert.Equal(t, before, cm.State())

	// an actor without any rig
	sc.Actors[1].Rig = nil
	_, err = NewAreaRule(cm, areaIntent(), DefaultOptions(), nil).Apply(sc)
	assert.ErrorIs(t, err, ErrMissingRigJoint)
	assert.Equal(t, before, cm.State())
}

func TestAreaMissingHead(t *testing.T) {
	alice := xyz.NewActor("alice", math32.Vec3(0, 0, -5))
	alice.Rig.AddJoint("Neck", "", math32.Vec3(0, 1.5, 0))
	sc := newScene(t, alice)
	cm := newCamera(50)
	_, err := NewAreaRule(cm, areaIntent(), DefaultOptions(), nil).Apply(sc)
	assert.ErrorIs(t, err, ErrMissingRigJoint)
}

func TestInvalidFieldOfView(t *testing.T) {
	for _, fov := range []float32{180, 0, -10, 200} {
		sc := groupScene(t)
		cm := newCamera(fov)
		before := cm.State()
		ar := NewAreaRule(cm, areaIntent(), DefaultOptions(), nil)
		_, err := ar.Apply(sc)
		assert.ErrorIs(t, err, ErrInvalidFieldOfView, "fov %g", fov)
		assert.Equal(t, before, cm.State())
		assert.Equal(t, 1, ar.Runs())
	}
	assert.NoError(t, ValidateFOV(179))
	assert.ErrorIs(t, ValidateFOV(float32(math.NaN())), ErrInvalidFieldOfView)
}

func TestFillDistanceLaw(t *testing.T) {
	assert.InDelta(t, 1, FillDistance(1, 90), 1e-5)
	for _, fov := range []float32{10, 30, 50, 90, 150} {
		sc := groupScene(t)
		cm := newCamera(fov)
		pl, err := NewAreaRule(cm, areaIntent(), DefaultOptions(), nil).Apply(sc)
		require.NoError(t, err)
		require.True(t, pl.Applied)
		want := pl.Sphere.Radius / math32.Tan(fov/2*math32.Pi/180)
		assert.InDelta(t, want, cm.Position().DistanceTo(pl.Sphere.Center), float64(tol*want), "fov %g", fov)
	}
}

func TestAreaNonFinitePlacement(t *testing.T) {
	sc := groupScene(t)
	cm := newCamera(50)
	cm.SetPosition(math32.Vec3(math32.Infinity, 0, 0))
	cm.UpdateMatrix()
	before := cm.State()
	_, err := NewAreaRule(cm, areaIntent(), DefaultOptions(), nil).Apply(sc)
	assert.ErrorIs(t, err, ErrDegenerateBoundingVolume)
	assert.ErrorContains(t, err, "camera placement")
	assert.Equal(t, before, cm.State())
}

func TestAngleBetween(t *testing.T) {
	x := math32.Vec3(1, 0, 0)
	assert.InDelta(t, math32.Pi/2, angleBetween(x, math32.Vec3(0, 2, 0)), 1e-5)
	assert.InDelta(t, math32.Pi/2, angleBetween(x, math32.Vec3(0, -2, 0)), 1e-5)
	assert.InDelta(t, math32.Pi, angleBetween(x, math32.Vec3(-3, 0, 0)), 1e-5)
	assert.Zero(t, angleBetween(x, math32.Vector3{}))

	assert.True(t, finite(x))
	assert.False(t, finite(math32.Vec3(0, float32(math.NaN()), 0)))
	assert.False(t, finite(math32.Vec3(0, 0, -math32.Infinity)))
}

func TestIdempotence(t *testing.T) {
	sc := groupScene(t)
	cm := newCamera(50)
	cm.SetPosition(math32.Vec3(0.5, 1, 2))
	cm.UpdateMatrix()
	initial := cm.State()
	ar := NewAreaRule(cm, areaIntent(), DefaultOptions(), nil)
	_, err := ar.Apply(sc)
	require.NoError(t, err)
	first := cm.State()

	cm.SetState(initial)
	_, err = ar.Apply(sc)
	require.NoError(t, err)
	second := cm.State()
	assert.Equal(t, 2, ar.Runs())
	assertVector3(t, first.Pos, second.Pos)
	assert.InDelta(t, 1, math32.Abs(first.Quat.Dot(second.Quat)), 1e-5)
}

func TestPlanarProximity(t *testing.T) {
	alice := newActor("alice", math32.Vec3(0, 0, 0))
	bob := newActor("bob", math32.Vec3(1, 0, 0))
	newScene(t, alice, bob)
	cands := []*xyz.Actor{alice, bob}
	assert.Len(t, InRange(alice.WorldPos(), cands, 1.5, PlaneXY), 2)

	// elevation alone never changes the in-range set
	for _, z := range []float32{-100, 3, 50} {
		bob.Pose.Pos.Z = z
		require.NoError(t, bob.UpdateWorld())
		assert.Len(t, InRange(alice.WorldPos(), cands, 1.5, PlaneXY), 2)
	}
	bob.Pose.Pos.Set(1, 0, 0)
	for _, y := range []float32{-100, 3, 50} {
		bob.Pose.Pos.Y = y
		require.NoError(t, bob.UpdateWorld())
		assert.Len(t, InRange(alice.WorldPos(), cands, 1.5, PlaneXZ), 2)
		assert.Len(t, InRange(alice.WorldPos(), cands, 1.5, PlaneXY), 1)
	}

	// symmetric
	bob.Pose.Pos.Set(1.2, 0.6, 7)
	require.NoError(t, bob.UpdateWorld())
	for _, pl := range PlanesValues() {
		ab := InRange(alice.WorldPos(), []*xyz.Actor{bob}, 1.5, pl)
		ba := InRange(bob.WorldPos(), []*xyz.Actor{alice}, 1.5, pl)
		assert.Equal(t, len(ab), len(ba), "plane %v", pl)
	}

	// strictly less than the radius
	assert.Empty(t, InRange(math32.Vector3{}, []*xyz.Actor{bob}, 0, PlaneXY))
	assert.Equal(t, float32(25), PlaneXZ.DistanceSquared(math32.Vec3(3, 9, 4), math32.Vector3{}))
	assert.Equal(t, float32(3), PlaneXY.Elevation(math32.Vec3(1, 2, 3)))
	assert.Equal(t, float32(2), PlaneXZ.Elevation(math32.Vec3(1, 2, 3)))
}

func TestExcludePrimary(t *testing.T) {
	sc := newScene(t,
		newActor("alice", math32.Vec3(0, 0, -5)),
		newActor("bob", math32.Vec3(1, 0, -5)),
	)
	cm := newCamera(50)
	pl, err := NewAreaRule(cm, areaIntent(), DefaultOptions(), nil).Apply(sc)
	require.NoError(t, err)
	assert.True(t, pl.Applied)
	assert.Equal(t, []string{"alice", "bob"}, pl.InRange)

	cm = newCamera(50)
	opts := DefaultOptions()
	opts.ExcludePrimary = true
	pl, err = NewAreaRule(cm, areaIntent(), opts, nil).Apply(sc)
	require.NoError(t, err)
	assert.False(t, pl.Applied)
	assert.Equal(t, []string{"bob"}, pl.InRange)
}

func TestAttachmentPolicies(t *testing.T) {
	assert.True(t, LeafOnly.Includes(xyz.Leaf))
	assert.False(t, LeafOnly.Includes(xyz.OtherAttachment))
	assert.True(t, AllAttachments.Includes(xyz.OtherAttachment))
	assert.False(t, NoAttachments.Includes(xyz.Leaf))

	sc := groupScene(t)
	prim := sc.ActorByID("alice")
	opts := DefaultOptions()
	opts.PrimaryAttachments = AllAttachments
	ps, err := CollectPoints(prim, sc.Actors, &opts)
	require.NoError(t, err)
	assert.Equal(t, 9, ps.Len())

	opts.CompanionAttachments = NoAttachments
	opts.PrimaryAttachments = NoAttachments
	ps, err = CollectPoints(prim, sc.Actors, &opts)
	require.NoError(t, err)
	assert.Equal(t, 4, ps.Len())

	// the primary head comes last
	assertVector3(t, math32.Vec3(0, 1.7, -5), ps.Points[3])
}

func TestDegenerateVolume(t *testing.T) {
	vol := NewVolume(nil)
	assert.ErrorIs(t, vol.Framable(0), ErrDegenerateBoundingVolume)
	assert.ErrorIs(t, vol.Framable(1), ErrDegenerateBoundingVolume)

	vol = NewVolume([]math32.Vector3{math32.Vec3(1, 2, 3)})
	assert.ErrorIs(t, vol.Framable(0), ErrDegenerateBoundingVolume)
	assert.NoError(t, vol.Framable(0.1))

	vol = NewVolume([]math32.Vector3{math32.Vec3(1, 2, 3), math32.Vec3(math32.Infinity, 0, 0)})
	assert.ErrorIs(t, vol.Framable(1), ErrDegenerateBoundingVolume)

	// two bare rigs at the same spot reduce to a single point
	bare := func(id string) *xyz.Actor {
		ac := xyz.NewActor(id, math32.Vec3(0, 0, -5))
		ac.Rig.AddJoint("Neck", "", math32.Vec3(0, 1.5, 0))
		ac.Rig.AddJoint("Head", "Neck", math32.Vector3{})
		return ac
	}
	sc := newScene(t, bare("alice"), bare("bob"))
	cm := newCamera(50)
	before := cm.State()
	_, err := NewAreaRule(cm, areaIntent(), DefaultOptions(), nil).Apply(sc)
	assert.ErrorIs(t, err, ErrDegenerateBoundingVolume)
	assert.Equal(t, before, cm.State())
}

func TestVolume(t *testing.T) {
	vol := NewVolume([]math32.Vector3{math32.Vec3(-1, 0, 0), math32.Vec3(1, 2, 0)})
	assertVector3(t, math32.Vec3(0, 1, 0), vol.Center)
	assert.InDelta(t, math32.Sqrt(2), vol.Sphere.Radius, 1e-5)
	assertVector3(t, math32.Vec3(5, 2, 7), vol.AreaCenter(math32.Vec3(5, -3, 7)))

	ax, ok := RotationAxis(math32.Vec3(0, 1, 0), math32.Vec3(0, 2, 0))
	assert.True(t, ok)
	assertVector3(t, math32.Vec3(-1, 0, 0), ax)
	_, ok = RotationAxis(math32.Vec3(0, 1, 0), math32.Vec3(0, 1, 0))
	assert.False(t, ok)
	_, ok = RotationAxis(math32.Vec3(0, 0, 1), math32.Vec3(0, 0, 0))
	assert.False(t, ok)
}

func TestSubjectRule(t *testing.T) {
	sc := groupScene(t)
	cm := xyz.NewCamera()
	in := Intent{Kind: Subject, PrimaryActor: "bob"}
	rl, err := NewRule(cm, in, DefaultOptions(), nil)
	require.NoError(t, err)
	pl, err := rl.Apply(sc)
	require.NoError(t, err)
	assert.True(t, pl.Applied)
	assert.Equal(t, []string{"bob"}, pl.InRange)
	assert.Equal(t, 2, pl.NumPoints)
	assert.InDelta(t, 0.15, pl.Sphere.Radius, 1e-5)
	assertVector3(t, math32.Vec3(1, 1.775, -5), pl.Sphere.Center)
	assert.InDelta(t, FillDistance(0.15, cm.FOV), cm.Position().DistanceTo(pl.Sphere.Center), tol)
	assertVector3(t, pl.Sphere.Center.Sub(cm.Position()).Normal(), cm.Forward())
	assertVector3(t, pl.Sphere.Center, cm.Target)

	opts := DefaultOptions()
	opts.HeadRadius = 0
	opts.PrimaryAttachments = NoAttachments
	_, err = NewSubjectRule(xyz.NewCamera(), in, opts).Apply(sc)
	assert.ErrorIs(t, err, ErrDegenerateBoundingVolume)
}

func TestTwoShotRule(t *testing.T) {
	sc := newScene(t,
		newActor("alice", math32.Vec3(0, 0, -5)),
		newActor("bob", math32.Vec3(1, 0, -5)),
		newActor("carol", math32.Vec3(-0.5, 0, -5)),
		newActor("dave", math32.Vec3(0.2, 0, 5)),
	)
	opts := DefaultOptions()
	opts.Plane = PlaneXZ
	cm := xyz.NewCamera()
	pl, err := NewTwoShotRule(cm, Intent{Kind: TwoShot, PrimaryActor: "alice"}, opts, nil).Apply(sc)
	require.NoError(t, err)
	assert.True(t, pl.Applied)
	assert.Equal(t, []string{"alice", "carol"}, pl.InRange)
	assert.Equal(t, 4, pl.NumPoints)
	assert.InDelta(t, FillDistance(pl.Sphere.Radius, cm.FOV), cm.Position().DistanceTo(pl.Sphere.Center), tol)

	// dave is only close in the XY plane
	opts.Radius = 0.4
	cm = xyz.NewCamera()
	before := cm.State()
	pl, err = NewTwoShotRule(cm, Intent{Kind: TwoShot, PrimaryActor: "alice"}, opts, nil).Apply(sc)
	require.NoError(t, err)
	assert.False(t, pl.Applied)
	assert.Equal(t, before, cm.State())

	opts.Plane = PlaneXY
	pl, err = NewTwoShotRule(cm, Intent{Kind: TwoShot, PrimaryActor: "alice"}, opts, nil).Apply(sc)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "dave"}, pl.InRange)
}

func TestRuleErrors(t *testing.T) {
	sc := groupScene(t)
	_, err := NewRule(xyz.NewCamera(), Intent{Kind: ShotKinds(42)}, DefaultOptions(), nil)
	assert.Error(t, err)

	for _, k := range ShotKindsValues() {
		in := Intent{Kind: k, PrimaryActor: "nobody"}
		rl, err := NewRule(xyz.NewCamera(), in, DefaultOptions(), nil)
		require.NoError(t, err)
		_, err = rl.Apply(sc)
		assert.ErrorIs(t, err, ErrUnknownActor, "kind %v", k)

		rl, err = NewRule(nil, in, DefaultOptions(), nil)
		require.NoError(t, err)
		_, err = rl.Apply(sc)
		assert.ErrorIs(t, err, ErrNilCamera, "kind %v", k)
	}
}

func TestRadiusOverride(t *testing.T) {
	sc := newScene(t,
		newActor("alice", math32.Vec3(0, 0, -5)),
		newActor("bob", math32.Vec3(2, 0, -5)),
	)
	in := areaIntent()
	in.Radius = 2.5
	rl, err := NewRule(newCamera(50), in, DefaultOptions(), nil)
	require.NoError(t, err)
	pl, err := rl.Apply(sc)
	require.NoError(t, err)
	assert.True(t, pl.Applied)

	// explicit candidates take the place of the scene actors
	rl, err = NewRule(newCamera(50), in, DefaultOptions(), sc.Actors[:1])
	require.NoError(t, err)
	pl, err = rl.Apply(sc)
	require.NoError(t, err)
	assert.False(t, pl.Applied)
}

func TestOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, float32(1.5), o.Radius)
	assert.Equal(t, LeafOnly, o.PrimaryAttachments)
	assert.Equal(t, AllAttachments, o.CompanionAttachments)
	assert.Equal(t, PlaneXY, o.Plane)
	assert.False(t, o.ExcludePrimary)
	assert.Equal(t, 4, o.Workers)

	var k ShotKinds
	require.NoError(t, k.SetString("TwoShot"))
	assert.Equal(t, TwoShot, k)
	assert.Equal(t, "Subject", Subject.String())
}
