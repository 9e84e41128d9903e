package robot

import "testing"

func TestHandleKeyTable(t *testing.T) {
	start := Angles{Arm1: 10, Joint1: 20, Joint2: 30, Joint3: 40}
	tests := []struct {
		key  Key
		want Angles
	}{
		{KeyUp, Angles{Arm1: 10, Joint1: 23, Joint2: 30, Joint3: 40}},
		{KeyDown, Angles{Arm1: 10, Joint1: 17, Joint2: 30, Joint3: 40}},
		{KeyRight, Angles{Arm1: 13, Joint1: 20, Joint2: 30, Joint3: 40}},
		{KeyLeft, Angles{Arm1: 7, Joint1: 20, Joint2: 30, Joint3: 40}},
		{KeyZ, Angles{Arm1: 10, Joint1: 20, Joint2: 33, Joint3: 40}},
		{KeyX, Angles{Arm1: 10, Joint1: 20, Joint2: 27, Joint3: 40}},
		{KeyV, Angles{Arm1: 10, Joint1: 20, Joint2: 30, Joint3: 43}},
		{KeyC, Angles{Arm1: 10, Joint1: 20, Joint2: 30, Joint3: 37}},
	}
	for _, tt := range tests {
		got, ok := HandleKey(start, tt.key)
		if !ok {
			t.Errorf("key %d: not recognized", tt.key)
		}
		if got != tt.want {
			t.Errorf("key %d: got %+v, want %+v", tt.key, got, tt.want)
		}
	}
}

func TestHandleKeyUnknownIsNoOp(t *testing.T) {
	a := DefaultAngles()
	for _, k := range []Key{KeyNone, Key(99), Key(-1)} {
		got, ok := HandleKey(a, k)
		if ok {
			t.Errorf("key %d reported as recognized", k)
		}
		if got != a {
			t.Errorf("key %d changed state: %+v -> %+v", k, a, got)
		}
	}
}

func TestClampedJointsStopAtBound(t *testing.T) {
	tests := []struct {
		name  string
		start Angles
		key   Key
		get   func(Angles) float32
		bound float32
	}{
		{"joint1 up", Angles{Joint1: 134}, KeyUp, func(a Angles) float32 { return a.Joint1 }, 135},
		{"joint1 down", Angles{Joint1: -134}, KeyDown, func(a Angles) float32 { return a.Joint1 }, -135},
		{"joint3 up", Angles{Joint3: 59}, KeyV, func(a Angles) float32 { return a.Joint3 }, 60},
		{"joint3 down", Angles{Joint3: -58}, KeyC, func(a Angles) float32 { return a.Joint3 }, -60},
		{"joint1 from zero", Angles{}, KeyUp, func(a Angles) float32 { return a.Joint1 }, 135},
	}
	for _, tt := range tests {
		a := tt.start
		for i := 0; i < 200; i++ {
			a, _ = HandleKey(a, tt.key)
			v := tt.get(a)
			if (tt.bound > 0 && v > tt.bound) || (tt.bound < 0 && v < tt.bound) {
				t.Fatalf("%s: press %d went past bound: %v", tt.name, i, v)
			}
		}
		if got := tt.get(a); got != tt.bound {
			t.Errorf("%s: settled at %v, want %v", tt.name, got, tt.bound)
		}
	}
}

func TestJoint1TwoPressesFrom134(t *testing.T) {
	a := Angles{Joint1: 134}
	a, _ = HandleKey(a, KeyUp)
	a, _ = HandleKey(a, KeyUp)
	if a.Joint1 != 135 {
		t.Fatalf("joint1 = %v, want 135", a.Joint1)
	}
}

func TestWrappedJoints(t *testing.T) {
	a := Angles{}
	for i := 0; i < 1000; i++ {
		a, _ = HandleKey(a, KeyRight)
		a, _ = HandleKey(a, KeyZ)
	}
	// 3000 mod 360
	if a.Arm1 != 120 || a.Joint2 != 120 {
		t.Fatalf("after 1000 increments: arm1=%v joint2=%v, want 120", a.Arm1, a.Joint2)
	}

	b := Angles{}
	for i := 0; i < 1000; i++ {
		b, _ = HandleKey(b, KeyLeft)
		if b.Arm1 <= -360 || b.Arm1 >= 360 {
			t.Fatalf("arm1 out of range: %v", b.Arm1)
		}
	}
	if b.Arm1 != -120 {
		t.Fatalf("after 1000 decrements: arm1=%v, want -120", b.Arm1)
	}
}

func TestHandleKeyAtBoundStillRecognized(t *testing.T) {
	tests := []struct {
		key  Key
		from Angles
	}{
		{KeyUp, Angles{Joint1: Joint1Limit}},
		{KeyDown, Angles{Joint1: -Joint1Limit}},
		{KeyV, Angles{Joint3: Joint3Limit}},
		{KeyC, Angles{Joint3: -Joint3Limit}},
	}
	for _, tt := range tests {
		got, ok := HandleKey(tt.from, tt.key)
		if !ok {
			t.Errorf("key %v at bound: ok = false, want true", tt.key)
		}
		if got != tt.from {
			t.Errorf("key %v at bound moved %+v to %+v", tt.key, tt.from, got)
		}
	}
}

func TestAnglesGet(t *testing.T) {
	a := Angles{Arm1: 1, Joint1: 2, Joint2: 3, Joint3: 4}
	for j, want := range map[JointID]float32{JointNone: 0, JointArm1: 1, Joint1: 2, Joint2: 3, Joint3: 4} {
		if got := a.Get(j); got != want {
			t.Errorf("Get(%v) = %v, want %v", j, got, want)
		}
	}
}
