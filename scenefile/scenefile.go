// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenefile reads and writes scene documents: YAML snapshots of
// the actors, props and cameras of a scene, along with the shots to
// compose in it.
package scenefile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/previs/shot"
	"cogentcore.org/previs/xyz"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Document is a scene document.
type Document struct {

	// ActiveCamera is the ID of the camera the perspective view looks through.
	ActiveCamera string `yaml:"active_camera,omitempty"`

	// Cameras are the scene cameras.
	Cameras []*xyz.CameraRecord `yaml:"cameras,omitempty"`

	// Actors are the characters.
	Actors []*Actor `yaml:"actors,omitempty"`

	// Props are the other objects.
	Props []*Prop `yaml:"props,omitempty"`

	// Shots are the shots to compose.
	Shots []shot.Intent `yaml:"shots,omitempty"`
}

// Actor is a character in a [Document].
type Actor struct {
	ID       string         `yaml:"id,omitempty"`
	Name     string         `yaml:"name,omitempty"`
	Position math32.Vector3 `yaml:"position"`

	// Rotation is in Euler angles, in degrees.
	Rotation math32.Vector3 `yaml:"rotation,omitempty"`

	Joints []*Joint `yaml:"joints,omitempty"`
}

// Joint is a rig joint in a [Document], positioned relative to its parent.
type Joint struct {
	Name        string         `yaml:"name"`
	Parent      string         `yaml:"parent,omitempty"`
	Position    math32.Vector3 `yaml:"position"`
	Rotation    math32.Vector3 `yaml:"rotation,omitempty"`
	Attachments []*Attachment  `yaml:"attachments,omitempty"`
}

// Attachment is a joint attachment in a [Document].
type Attachment struct {
	Name     string         `yaml:"name"`
	Position math32.Vector3 `yaml:"position"`
}

// Prop is a non-character object in a [Document].
type Prop struct {
	ID       string          `yaml:"id"`
	Name     string          `yaml:"name,omitempty"`
	Type     xyz.ObjectTypes `yaml:"type"`
	Position math32.Vector3  `yaml:"position"`
	Rotation math32.Vector3  `yaml:"rotation,omitempty"`
}

// Open reads the document from the given file.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %s: %w", filename, err)
	}
	return doc, nil
}

// Read reads a document from the given reader. Actors without an ID
// are given a new random one.
func Read(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	doc.AssignIDs()
	return doc, nil
}

// Save writes the document to the given file.
func (doc *Document) Save(filename string) error {
	var b bytes.Buffer
	if err := doc.Write(&b); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0644)
}

// Write writes the document to the given writer.
func (doc *Document) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// AssignIDs gives a new random ID to each actor that has none.
func (doc *Document) AssignIDs() {
	for _, ad := range doc.Actors {
		if ad.ID == "" {
			ad.ID = uuid.NewString()
		}
	}
}

// Scene returns a new scene built from the document, with resolved
// rigs and updated world matrices.
func (doc *Document) Scene() (*xyz.Scene, error) {
	sc := xyz.NewScene()
	sc.ActiveCamera = doc.ActiveCamera
	for _, cr := range doc.Cameras {
		c := *cr
		sc.Cameras = append(sc.Cameras, &c)
	}
	var errs []error
	ids := map[string]bool{}
	for _, ad := range doc.Actors {
		if ids[ad.ID] {
			errs = append(errs, fmt.Errorf("duplicate actor id %q", ad.ID))
			continue
		}
		ids[ad.ID] = true
		ac := xyz.NewActor(ad.ID, ad.Position)
		if ad.Name != "" {
			ac.Name = ad.Name
		}
		ac.Pose.SetEulerRotation(ad.Rotation.X, ad.Rotation.Y, ad.Rotation.Z)
		if len(ad.Joints) == 0 {
			ac.Rig = nil
		}
		for _, jd := range ad.Joints {
			jt := ac.Rig.AddJoint(jd.Name, jd.Parent, jd.Position)
			jt.Pose.SetEulerRotation(jd.Rotation.X, jd.Rotation.Y, jd.Rotation.Z)
			for _, at := range jd.Attachments {
				jt.AddAttachment(at.Name, at.Position)
			}
		}
		sc.AddActor(ac)
	}
	for _, pd := range doc.Props {
		pr := sc.AddProp(pd.ID, pd.Type, pd.Position)
		if pd.Name != "" {
			pr.Name = pd.Name
		}
		pr.Pose.SetEulerRotation(pd.Rotation.X, pd.Rotation.Y, pd.Rotation.Z)
	}
	if err := sc.UpdateWorld(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return sc, nil
}

// Shot returns the shot with the given name, and false if there is none.
func (doc *Document) Shot(name string) (shot.Intent, bool) {
	for _, in := range doc.Shots {
		if in.Name == name {
			return in, true
		}
	}
	return shot.Intent{}, false
}
