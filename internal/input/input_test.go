package input

import (
	"reflect"
	"testing"

	"gl-demos/internal/robot"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestJointKey(t *testing.T) {
	tests := []struct {
		action Action
		want   robot.Key
	}{
		{ActionJoint1Up, robot.KeyUp},
		{ActionJoint1Down, robot.KeyDown},
		{ActionArm1Right, robot.KeyRight},
		{ActionArm1Left, robot.KeyLeft},
		{ActionJoint2Forward, robot.KeyZ},
		{ActionJoint2Back, robot.KeyX},
		{ActionJoint3Open, robot.KeyV},
		{ActionJoint3Close, robot.KeyC},
		{ActionSpeedUp, robot.KeyNone},
		{ActionSpeedDown, robot.KeyNone},
		{ActionScreenshot, robot.KeyNone},
		{ActionQuit, robot.KeyNone},
	}
	for _, tt := range tests {
		if got := JointKey(tt.action); got != tt.want {
			t.Errorf("JointKey(%d) = %d, want %d", tt.action, got, tt.want)
		}
	}
}

func TestHandleKeyEventQueuesInOrder(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	im.HandleKeyEvent(glfw.KeyUp, glfw.Release)
	im.HandleKeyEvent(glfw.KeyV, glfw.Press)
	im.HandleKeyEvent(glfw.KeyV, glfw.Repeat)
	im.HandleKeyEvent(glfw.KeyQ, glfw.Press) // unbound
	im.HandleKeyEvent(glfw.KeyDown, glfw.Press)
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)

	want := []Action{
		ActionJoint1Up, ActionSpeedUp,
		ActionJoint3Open,
		ActionJoint3Open,
		ActionJoint1Down, ActionSpeedDown,
		ActionQuit,
	}
	if got := im.Drain(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Drain() = %v, want %v", got, want)
	}
	if got := im.Drain(); got != nil {
		t.Fatalf("second Drain() = %v, want nil", got)
	}
}

func TestBindKeyRejectsUnknownAction(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyA, ActionCount)
	im.BindKey(glfw.KeyA, -1)
	im.BindKey(glfw.KeyB, ActionScreenshot)

	im.HandleKeyEvent(glfw.KeyA, glfw.Press)
	im.HandleKeyEvent(glfw.KeyB, glfw.Press)

	if got, want := im.Drain(), []Action{ActionScreenshot}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Drain() = %v, want %v", got, want)
	}
}
