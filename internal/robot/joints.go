package robot

import "gl-demos/internal/motion"

// StepDegrees is how far one key press turns a joint
const StepDegrees = 3.0

// Joint limits in degrees
const (
	Joint1Limit = 135.0
	Joint3Limit = 60.0
)

// JointID names an articulated joint
type JointID int

const (
	JointNone JointID = iota
	JointArm1
	Joint1
	Joint2
	Joint3
)

func (j JointID) String() string {
	switch j {
	case JointArm1:
		return "arm1"
	case Joint1:
		return "joint1"
	case Joint2:
		return "joint2"
	case Joint3:
		return "joint3"
	default:
		return "none"
	}
}

// Angles is the joint state of the arm in degrees.
// A frame reads one Angles value; key handling returns a new one.
type Angles struct {
	Arm1   float32
	Joint1 float32
	Joint2 float32
	Joint3 float32
}

// DefaultAngles is the pose the arm starts in
func DefaultAngles() Angles {
	return Angles{Arm1: 120, Joint1: 50}
}

// Get returns the angle of joint j, 0 for JointNone
func (a Angles) Get(j JointID) float32 {
	switch j {
	case JointArm1:
		return a.Arm1
	case Joint1:
		return a.Joint1
	case Joint2:
		return a.Joint2
	case Joint3:
		return a.Joint3
	}
	return 0
}

// Key is a keyboard input understood by the arm
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyZ
	KeyX
	KeyV
	KeyC
)

// HandleKey applies one key press to a and returns the new state.
// The bool reports whether the key is recognized, even when a clamp left the
// angle where it was; unknown keys return a unchanged and false.
func HandleKey(a Angles, k Key) (Angles, bool) {
	switch k {
	case KeyUp:
		a.Joint1 = clampUp(a.Joint1, Joint1Limit)
	case KeyDown:
		a.Joint1 = clampDown(a.Joint1, -Joint1Limit)
	case KeyRight:
		a.Arm1 = motion.Wrap360(a.Arm1 + StepDegrees)
	case KeyLeft:
		a.Arm1 = motion.Wrap360(a.Arm1 - StepDegrees)
	case KeyZ:
		a.Joint2 = motion.Wrap360(a.Joint2 + StepDegrees)
	case KeyX:
		a.Joint2 = motion.Wrap360(a.Joint2 - StepDegrees)
	case KeyV:
		a.Joint3 = clampUp(a.Joint3, Joint3Limit)
	case KeyC:
		a.Joint3 = clampDown(a.Joint3, -Joint3Limit)
	default:
		return a, false
	}
	return a, true
}

func clampUp(v, max float32) float32 {
	if v < max {
		v += StepDegrees
		if v > max {
			v = max
		}
	}
	return v
}

func clampDown(v, min float32) float32 {
	if v > min {
		v -= StepDegrees
		if v < min {
			v = min
		}
	}
	return v
}
