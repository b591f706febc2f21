// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// JointRoles are the well-known roles a rig joint can play
// for shot composition. Roles are resolved from joint names
// once, when a rig is loaded.
type JointRoles int32 //enums:enum

const (
	// OtherJoint is any joint without a special role.
	OtherJoint JointRoles = iota

	// Head is the head joint, named "Head" in the rig.
	Head

	// Neck is the neck joint, named "Neck" in the rig.
	Neck
)

// AttachmentCategories classify the child attachments of a joint
// (hair cards, leaves, props). Categories are resolved from attachment
// names once, when a rig is loaded.
type AttachmentCategories int32 //enums:enum

const (
	// OtherAttachment is any attachment without a special category.
	OtherAttachment AttachmentCategories = iota

	// Leaf is an attachment whose name contains "leaf",
	// used for hair and foliage geometry around the head.
	Leaf
)

// JointRoleForName returns the role of a joint with the given name.
func JointRoleForName(name string) JointRoles {
	switch name {
	case "Head":
		return Head
	case "Neck":
		return Neck
	}
	return OtherJoint
}

// AttachmentCategoryForName returns the category of an attachment with the given name.
func AttachmentCategoryForName(name string) AttachmentCategories {
	if strings.Contains(name, "leaf") {
		return Leaf
	}
	return OtherAttachment
}

// Attachment is a child of a joint with its own transform,
// such as hair or leaf geometry.
type Attachment struct {

	// Name is the attachment name in the rig.
	Name string

	// Category is resolved from the Name by [Rig.Resolve].
	Category AttachmentCategories

	// Pose is relative to the parent joint.
	Pose Pose
}

// Joint is one named joint (bone) of a skeletal rig.
type Joint struct {

	// Name is the joint name in the rig.
	Name string

	// Parent is the name of the parent joint; empty for joints
	// attached directly to the actor root.
	Parent string

	// Role is resolved from the Name by [Rig.Resolve].
	Role JointRoles

	// Pose is relative to the parent joint, or the actor if there is no parent.
	Pose Pose

	// Attachments are the child attachment points of this joint.
	Attachments []*Attachment

	parent *Joint
}

// WorldPos returns the world position of the joint,
// as of the last [Scene.UpdateWorld].
func (jt *Joint) WorldPos() math32.Vector3 {
	return jt.Pose.WorldPos()
}

// AddAttachment adds a new attachment at the given position relative to the joint.
func (jt *Joint) AddAttachment(name string, pos math32.Vector3) *Attachment {
	at := &Attachment{Name: name, Category: AttachmentCategoryForName(name)}
	at.Pose.Pos = pos
	at.Pose.Defaults()
	jt.Attachments = append(jt.Attachments, at)
	return at
}

// Rig is the skeletal rig of an actor.
type Rig struct {

	// Joints are all the joints of the rig.
	Joints []*Joint

	// roles maps each resolved role to the first joint with that role.
	roles map[JointRoles]*Joint

	// order is the joint update order, parents before children.
	order []*Joint
}

// AddJoint adds a new joint with the given name, parent joint name
// and position relative to the parent.
func (rg *Rig) AddJoint(name, parent string, pos math32.Vector3) *Joint {
	jt := &Joint{Name: name, Parent: parent, Role: JointRoleForName(name)}
	jt.Pose.Pos = pos
	jt.Pose.Defaults()
	rg.Joints = append(rg.Joints, jt)
	rg.roles = nil
	return jt
}

// Resolve classifies all joints and attachments by name, links joints
// to their parents, and computes the joint update order. It must be
// called after the rig is built or edited and before it is used.
func (rg *Rig) Resolve() error {
	byName := make(map[string]*Joint, len(rg.Joints))
	rg.roles = make(map[JointRoles]*Joint)
	for _, jt := range rg.Joints {
		jt.Role = JointRoleForName(jt.Name)
		for _, at := range jt.Attachments {
			at.Category = AttachmentCategoryForName(at.Name)
		}
		if _, has := byName[jt.Name]; !has {
			byName[jt.Name] = jt
		}
		if jt.Role != OtherJoint {
			if _, has := rg.roles[jt.Role]; !has {
				rg.roles[jt.Role] = jt
			}
		}
	}
	var errs []error
	for _, jt := range rg.Joints {
		jt.parent = nil
		if jt.Parent == "" {
			continue
		}
		pj, ok := byName[jt.Parent]
		if !ok {
			errs = append(errs, fmt.Errorf("joint %q: parent joint %q not found", jt.Name, jt.Parent))
			continue
		}
		jt.parent = pj
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	rg.order = rg.order[:0]
	state := make(map[*Joint]int, len(rg.Joints)) // 1 = visiting, 2 = done
	var visit func(jt *Joint) error
	visit = func(jt *Joint) error {
		switch state[jt] {
		case 1:
			return fmt.Errorf("joint %q: cycle in joint parents", jt.Name)
		case 2:
			return nil
		}
		state[jt] = 1
		if jt.parent != nil {
			if err := visit(jt.parent); err != nil {
				return err
			}
		}
		state[jt] = 2
		rg.order = append(rg.order, jt)
		return nil
	}
	for _, jt := range rg.Joints {
		if err := visit(jt); err != nil {
			return err
		}
	}
	return nil
}

// JointByRole returns the joint with the given role, and false
// if the rig has no such joint.
func (rg *Rig) JointByRole(role JointRoles) (*Joint, bool) {
	if rg == nil {
		return nil, false
	}
	if rg.roles == nil {
		if errors.Log(rg.Resolve()) != nil {
			return nil, false
		}
	}
	jt, ok := rg.roles[role]
	return jt, ok
}

// JointByName returns the first joint with the given name, or nil.
func (rg *Rig) JointByName(name string) *Joint {
	if rg == nil {
		return nil
	}
	for _, jt := range rg.Joints {
		if jt.Name == name {
			return jt
		}
	}
	return nil
}

// updateWorld updates the world matrices of all joints and attachments
// given the world matrix of the owning actor.
func (rg *Rig) updateWorld(actorWorld *math32.Matrix4) error {
	if rg.roles == nil || len(rg.order) != len(rg.Joints) {
		if err := rg.Resolve(); err != nil {
			return err
		}
	}
	for _, jt := range rg.order {
		jt.Pose.UpdateMatrix()
		if jt.parent != nil {
			jt.Pose.UpdateWorldMatrix(&jt.parent.Pose.WorldMatrix)
		} else {
			jt.Pose.UpdateWorldMatrix(actorWorld)
		}
		for _, at := range jt.Attachments {
			at.Pose.UpdateMatrix()
			at.Pose.UpdateWorldMatrix(&jt.Pose.WorldMatrix)
		}
	}
	return nil
}
