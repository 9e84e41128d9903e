package matstack

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPopEmpty(t *testing.T) {
	s := New(4)
	if _, err := s.Pop(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("pop on empty stack: got err %v, want ErrEmpty", err)
	}
	// Still deterministic after a balanced sequence
	s.Push(mgl32.Ident4())
	if _, err := s.Pop(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Pop(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("second pop: got err %v, want ErrEmpty", err)
	}
}

func TestMustPopPanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic from MustPop on empty stack")
		}
	}()
	New(0).MustPop()
}

func TestLIFO(t *testing.T) {
	// '+' pushes the next matrix, '-' pops and checks against the model
	sequences := []string{
		"+-",
		"++--",
		"+-+-+-",
		"++-+--",
		"+++-+---",
		"+-++-+--",
	}
	for _, seq := range sequences {
		s := New(0)
		var model []mgl32.Mat4
		for i, op := range seq {
			switch op {
			case '+':
				m := mgl32.Translate3D(float32(i), float32(2*i), -float32(i)).Mul4(mgl32.HomogRotate3DY(float32(i)))
				s.Push(m)
				model = append(model, m)
			case '-':
				got, err := s.Pop()
				if err != nil {
					t.Fatalf("%s: pop %d: %v", seq, i, err)
				}
				want := model[len(model)-1]
				model = model[:len(model)-1]
				if got != want {
					t.Errorf("%s: pop %d returned %v, want %v", seq, i, got, want)
				}
			}
		}
		if s.Len() != 0 {
			t.Errorf("%s: stack not empty after balanced sequence (len %d)", seq, s.Len())
		}
	}
}

func TestPushCopies(t *testing.T) {
	s := New(1)
	m := mgl32.Translate3D(1, 2, 3)
	s.Push(m)

	m = m.Mul4(mgl32.Scale3D(5, 5, 5))
	m[0] = 42

	got := s.MustPop()
	if got != mgl32.Translate3D(1, 2, 3) {
		t.Fatalf("stored matrix changed after caller mutation: %v", got)
	}
}

func TestReset(t *testing.T) {
	s := New(2)
	s.Push(mgl32.Ident4())
	s.Push(mgl32.Ident4())
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("len after reset = %d, want 0", s.Len())
	}
}
