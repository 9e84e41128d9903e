package robot

import (
	"fmt"

	"gl-demos/internal/matstack"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawCall carries the matrices of one segment draw
type DrawCall struct {
	Segment string
	Model   mgl32.Mat4 // scaled model matrix
	MVP     mgl32.Mat4
	Normal  mgl32.Mat4 // transpose(inverse(Model))
}

// Drawer issues the draw call of one segment
type Drawer interface {
	DrawSegment(call DrawCall) error
}

// NormalMatrix returns the matrix that carries normals through model,
// valid under non-uniform scale.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat4 {
	return model.Inv().Transpose()
}

type walker struct {
	angles   Angles
	viewProj mgl32.Mat4
	drawer   Drawer
	cur      mgl32.Mat4
	stack    *matstack.Stack
}

// Render walks the hierarchy for pose a and hands one DrawCall per segment
// to d, parents before children and siblings in declaration order.
// Hierarchy is not safe for concurrent use.
func (h *Hierarchy) Render(a Angles, viewProj mgl32.Mat4, d Drawer) error {
	w := &h.w
	w.angles = a
	w.viewProj = viewProj
	w.drawer = d
	w.cur = mgl32.Ident4()
	w.stack.Reset()

	if err := w.visit(h.root); err != nil {
		return err
	}
	if n := w.stack.Len(); n != 0 {
		return fmt.Errorf("render: %d transforms left on stack", n)
	}
	return nil
}

func (w *walker) visit(n *node) error {
	s := &n.seg
	w.cur = w.cur.Mul4(mgl32.Translate3D(s.Offset.X(), s.Offset.Y(), s.Offset.Z()))
	if s.Joint != JointNone {
		deg := s.Sign * w.angles.Get(s.Joint)
		w.cur = w.cur.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(deg), s.Axis))
	}

	if err := w.drawBox(s); err != nil {
		return err
	}
	if len(n.children) == 0 {
		return nil
	}

	// Children hang off the centre of the top face
	w.cur = w.cur.Mul4(mgl32.Translate3D(0, s.Size.Y(), 0))

	last := len(n.children) - 1
	for i, c := range n.children {
		branch := i < last
		if branch {
			w.stack.Push(w.cur)
		}
		if err := w.visit(c); err != nil {
			return err
		}
		if branch {
			w.cur = w.stack.MustPop()
		}
	}
	return nil
}

// drawBox scales the current transform to the segment size for one draw,
// leaving the unscaled transform for the joints below.
func (w *walker) drawBox(s *Segment) error {
	w.stack.Push(w.cur)
	w.cur = w.cur.Mul4(mgl32.Scale3D(s.Size.X(), s.Size.Y(), s.Size.Z()))

	call := DrawCall{
		Segment: s.Name,
		Model:   w.cur,
		MVP:     w.viewProj.Mul4(w.cur),
		Normal:  NormalMatrix(w.cur),
	}
	err := w.drawer.DrawSegment(call)

	w.cur = w.stack.MustPop()
	if err != nil {
		return fmt.Errorf("draw %s: %w", s.Name, err)
	}
	return nil
}
