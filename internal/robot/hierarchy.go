package robot

import (
	"errors"
	"fmt"

	"gl-demos/internal/matstack"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidHierarchy wraps every validation failure from NewHierarchy
var ErrInvalidHierarchy = errors.New("invalid hierarchy")

// Segment is one rigid box of an articulated model.
//
// The box is drawn in its joint frame: the parent's frame moved to the
// centre of the parent's top face, translated by Offset, then rotated by
// Sign*angle(Joint) degrees around Axis. Size scales a unit box whose
// origin is the centre of its bottom face.
type Segment struct {
	Name   string
	Parent string // empty for the root
	Offset mgl32.Vec3
	Axis   mgl32.Vec3
	Joint  JointID
	Sign   float32
	Size   mgl32.Vec3
}

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// ArmSegments describes the robot arm: base, two arm links, a palm and
// two fingers branching from the palm tip.
func ArmSegments() []Segment {
	return []Segment{
		{Name: "base", Offset: mgl32.Vec3{0, -12, 0}, Size: mgl32.Vec3{10, 2, 10}},
		{Name: "arm1", Parent: "base", Axis: axisY, Joint: JointArm1, Sign: 1, Size: mgl32.Vec3{3, 10, 3}},
		{Name: "arm2", Parent: "arm1", Axis: axisZ, Joint: Joint1, Sign: 1, Size: mgl32.Vec3{4, 10, 4}},
		{Name: "palm", Parent: "arm2", Axis: axisY, Joint: Joint2, Sign: 1, Size: mgl32.Vec3{2, 2, 6}},
		{Name: "finger1", Parent: "palm", Offset: mgl32.Vec3{0, 0, 2}, Axis: axisX, Joint: Joint3, Sign: 1, Size: mgl32.Vec3{1, 2, 1}},
		{Name: "finger2", Parent: "palm", Offset: mgl32.Vec3{0, 0, -2}, Axis: axisX, Joint: Joint3, Sign: -1, Size: mgl32.Vec3{1, 2, 1}},
	}
}

type node struct {
	seg      Segment
	children []*node
}

// Hierarchy is a validated segment tree ready to be walked each frame
type Hierarchy struct {
	root *node
	w    walker
}

// NewHierarchy builds the tree from segs. The first segment must be the
// root and every parent must be declared before its children; siblings
// are drawn in declaration order.
func NewHierarchy(segs []Segment) (*Hierarchy, error) {
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: no segments", ErrInvalidHierarchy)
	}
	if segs[0].Parent != "" {
		return nil, fmt.Errorf("%w: first segment %q has parent %q", ErrInvalidHierarchy, segs[0].Name, segs[0].Parent)
	}

	byName := make(map[string]*node, len(segs))
	var root *node
	for i, s := range segs {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: segment %d has no name", ErrInvalidHierarchy, i)
		}
		if _, dup := byName[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate segment %q", ErrInvalidHierarchy, s.Name)
		}
		if s.Size.X() <= 0 || s.Size.Y() <= 0 || s.Size.Z() <= 0 {
			return nil, fmt.Errorf("%w: segment %q has non-positive size %v", ErrInvalidHierarchy, s.Name, s.Size)
		}
		if s.Joint != JointNone && s.Axis.Len() == 0 {
			return nil, fmt.Errorf("%w: segment %q rotates around a zero axis", ErrInvalidHierarchy, s.Name)
		}
		if s.Joint != JointNone {
			s.Axis = s.Axis.Normalize()
		}

		n := &node{seg: s}
		if i == 0 {
			root = n
		} else {
			if s.Parent == "" {
				return nil, fmt.Errorf("%w: second root %q", ErrInvalidHierarchy, s.Name)
			}
			parent, ok := byName[s.Parent]
			if !ok {
				return nil, fmt.Errorf("%w: segment %q references undeclared parent %q", ErrInvalidHierarchy, s.Name, s.Parent)
			}
			parent.children = append(parent.children, n)
		}
		byName[s.Name] = n
	}

	h := &Hierarchy{root: root}
	h.w.stack = matstack.New(len(segs))
	return h, nil
}

// NewArm returns the hierarchy of the robot arm
func NewArm() *Hierarchy {
	h, err := NewHierarchy(ArmSegments())
	if err != nil {
		panic(err)
	}
	return h
}
