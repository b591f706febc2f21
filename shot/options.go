// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shot

//go:generate core generate

import "cogentcore.org/previs/xyz"

// ShotKinds are the kinds of shot a [Rule] can compose.
type ShotKinds int32 //enums:enum

const (
	// Area frames the primary actor together with every actor within the proximity radius.
	Area ShotKinds = iota

	// TwoShot frames the primary actor and the closest actor within the proximity radius.
	TwoShot

	// Subject frames the head of the primary actor alone.
	Subject
)

// AttachmentPolicies determine which child attachments of a joint
// are added to the points of interest along with the joint itself.
type AttachmentPolicies int32 //enums:enum

const (
	// LeafOnly includes only the attachments categorized as leaves.
	LeafOnly AttachmentPolicies = iota

	// AllAttachments includes every attachment of the joint.
	AllAttachments

	// NoAttachments includes only the joint itself.
	NoAttachments
)

// Includes returns whether an attachment of the given category
// is included under this policy.
func (ap AttachmentPolicies) Includes(cat xyz.AttachmentCategories) bool {
	switch ap {
	case AllAttachments:
		return true
	case LeafOnly:
		return cat == xyz.Leaf
	}
	return false
}

// Planes select the two coordinates used for the proximity test.
type Planes int32 //enums:enum

const (
	// PlaneXY compares the X and Y coordinates, ignoring Z.
	PlaneXY Planes = iota

	// PlaneXZ compares the X and Z coordinates, ignoring Y.
	PlaneXZ
)

// Options are the settings shared by all shot rules.
type Options struct {

	// Radius is the planar proximity radius, in scene units, within which
	// other actors count as in range of the primary actor.
	Radius float32 `default:"1.5" toml:"radius"`

	// ExcludePrimary removes the primary actor from the candidate actors.
	// By default the primary actor is a candidate, and so always counts
	// as one of the actors in range.
	ExcludePrimary bool `toml:"exclude_primary"`

	// PrimaryAttachments selects which attachments of the primary
	// actor's Head joint are points of interest.
	PrimaryAttachments AttachmentPolicies `default:"LeafOnly" toml:"primary_attachments"`

	// CompanionAttachments selects which attachments of the Neck joint
	// of the other actors in range are points of interest.
	CompanionAttachments AttachmentPolicies `default:"AllAttachments" toml:"companion_attachments"`

	// Plane selects the coordinates compared by the proximity test.
	Plane Planes `default:"PlaneXY" toml:"plane"`

	// HeadRadius is the smallest framing sphere radius used by the
	// Subject and TwoShot rules, so that a lone head can be framed.
	HeadRadius float32 `default:"0.15" toml:"head_radius"`

	// Workers is the number of shots evaluated at the same time by [Explore].
	Workers int `default:"4" toml:"workers"`
}

// Defaults sets the default values for all options.
func (o *Options) Defaults() {
	o.Radius = 1.5
	o.ExcludePrimary = false
	o.PrimaryAttachments = LeafOnly
	o.CompanionAttachments = AllAttachments
	o.Plane = PlaneXY
	o.HeadRadius = 0.15
	o.Workers = 4
}

// DefaultOptions returns a new [Options] with default values.
func DefaultOptions() Options {
	o := Options{}
	o.Defaults()
	return o
}
