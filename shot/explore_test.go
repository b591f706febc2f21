// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shot

import (
	"context"
	"fmt"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplore(t *testing.T) {
	sc := groupScene(t)
	base := newCamera(50)
	before := base.State()
	intents := []Intent{
		areaIntent(),
		{Name: "missing", Kind: Area, PrimaryActor: "nobody"},
		{Name: "bob", Kind: Subject, PrimaryActor: "bob"},
		{Name: "pair", Kind: TwoShot, PrimaryActor: "carol"},
	}
	for i := range 8 {
		intents = append(intents, Intent{Name: fmt.Sprintf("extra%d", i), Kind: Subject, PrimaryActor: "alice"})
	}
	opts := DefaultOptions()
	opts.Workers = 2
	res, err := Explore(context.Background(), sc, base, intents, opts)
	require.NoError(t, err)
	require.Len(t, res, len(intents))
	for i, r := range res {
		assert.Equal(t, intents[i].Name, r.Intent.Name)
		assert.NotSame(t, base, r.Camera)
	}
	assert.Equal(t, before, base.State())

	require.NoError(t, res[0].Err)
	assert.True(t, res[0].Placement.Applied)
	assertVector3(t, res[0].Placement.Position, res[0].Camera.Position())
	assert.ErrorIs(t, res[1].Err, ErrUnknownActor)
	require.NoError(t, res[2].Err)
	assert.Equal(t, []string{"bob"}, res[2].Placement.InRange)
	require.NoError(t, res[3].Err)
	assert.Equal(t, []string{"carol", "alice"}, res[3].Placement.InRange)
	for _, r := range res[4:] {
		require.NoError(t, r.Err)
		assertVector3(t, res[4].Placement.Position, r.Placement.Position)
	}

	// the same shots applied one at a time give the same placements
	cm := base.Clone()
	rl, err := NewRule(cm, intents[0], opts, nil)
	require.NoError(t, err)
	pl, err := rl.Apply(sc)
	require.NoError(t, err)
	assertVector3(t, pl.Position, res[0].Placement.Position)
}

func TestExploreCanceled(t *testing.T) {
	sc := groupScene(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Explore(ctx, sc, newCamera(50), []Intent{areaIntent()}, DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExploreBadRig(t *testing.T) {
	sc := groupScene(t)
	sc.Actors[0].Rig.AddJoint("Jaw", "Missing", math32.Vector3{})
	_, err := Explore(context.Background(), sc, newCamera(50), []Intent{areaIntent()}, DefaultOptions())
	assert.Error(t, err)
}
