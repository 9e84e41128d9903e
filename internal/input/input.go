package input

import (
	"sync"

	"gl-demos/internal/robot"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical demo action, not a physical key
type Action int

// Action constants using iota
const (
	ActionJoint1Up Action = iota
	ActionJoint1Down
	ActionArm1Right
	ActionArm1Left
	ActionJoint2Forward
	ActionJoint2Back
	ActionJoint3Open
	ActionJoint3Close
	ActionSpeedUp
	ActionSpeedDown
	ActionScreenshot
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys to logical actions and queues presses so
// the frame loop can apply them in order between frames.
type InputManager struct {
	mu sync.Mutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Presses and key repeats since the last Drain, oldest first
	queue []Action
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyUp, ActionJoint1Up)
	im.BindKey(glfw.KeyDown, ActionJoint1Down)
	im.BindKey(glfw.KeyRight, ActionArm1Right)
	im.BindKey(glfw.KeyLeft, ActionArm1Left)
	im.BindKey(glfw.KeyZ, ActionJoint2Forward)
	im.BindKey(glfw.KeyX, ActionJoint2Back)
	im.BindKey(glfw.KeyV, ActionJoint3Open)
	im.BindKey(glfw.KeyC, ActionJoint3Close)

	// Rotation speed of the animated demos shares the arrow keys
	im.BindKey(glfw.KeyUp, ActionSpeedUp)
	im.BindKey(glfw.KeyDown, ActionSpeedDown)
	im.BindKey(glfw.KeyKPAdd, ActionSpeedUp)
	im.BindKey(glfw.KeyKPSubtract, ActionSpeedDown)

	im.BindKey(glfw.KeyF12, ActionScreenshot)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// HandleKeyEvent queues the actions bound to key.
// Press and Repeat both enqueue, like keydown events in a browser.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	im.queue = append(im.queue, im.keyToActions[key]...)
}

// SetKeyCallback sets up the GLFW key callback for this input manager
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// Drain returns the queued actions in arrival order and empties the queue
func (im *InputManager) Drain() []Action {
	im.mu.Lock()
	defer im.mu.Unlock()

	if len(im.queue) == 0 {
		return nil
	}
	out := im.queue
	im.queue = nil
	return out
}

// JointKey translates an action into the arm's key, KeyNone if unrelated
func JointKey(a Action) robot.Key {
	switch a {
	case ActionJoint1Up:
		return robot.KeyUp
	case ActionJoint1Down:
		return robot.KeyDown
	case ActionArm1Right:
		return robot.KeyRight
	case ActionArm1Left:
		return robot.KeyLeft
	case ActionJoint2Forward:
		return robot.KeyZ
	case ActionJoint2Back:
		return robot.KeyX
	case ActionJoint3Open:
		return robot.KeyV
	case ActionJoint3Close:
		return robot.KeyC
	}
	return robot.KeyNone
}
