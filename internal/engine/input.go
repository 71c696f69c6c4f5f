package engine

// Key identifies the keyboard keys the controller reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyR
	KeyN
	KeyS
)

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// EventKind discriminates input events.
type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventMouseDown
	EventMouseUp
)

// Event is a decoded input event from the host layer.
type Event struct {
	Kind   EventKind
	Key    Key
	Button Button
	X, Y   int
}

// Quit returns a quit request.
func Quit() Event { return Event{Kind: EventQuit} }

// KeyDown returns a key press event.
func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// MouseDown returns a button press at pixel (x, y).
func MouseDown(b Button, x, y int) Event {
	return Event{Kind: EventMouseDown, Button: b, X: x, Y: y}
}

// MouseUp returns a button release.
func MouseUp(b Button) Event { return Event{Kind: EventMouseUp, Button: b} }

// Pointer is the cursor position sampled once per frame.
type Pointer struct {
	X, Y int
}

// handle applies a single edge-triggered event and reports whether the loop
// should terminate.
func (s *State) handle(ev Event) bool {
	switch ev.Kind {
	case EventQuit:
		return true
	case EventKeyDown:
		switch ev.Key {
		case KeyEscape:
			return true
		case KeySpace:
			s.SetRunning(!s.running)
		case KeyR:
			s.Reset()
		case KeyN:
			if !s.running {
				s.world.Step()
			}
		case KeyS:
			s.Randomize()
		}
	case EventMouseDown:
		switch ev.Button {
		case ButtonLeft:
			if s.running {
				return false
			}
			c := s.viewport.ScreenToWorld(ev.X, ev.Y)
			s.paint = !s.world.Alive(c)
			s.painting = true
			s.world.Set(c, s.paint)
		case ButtonMiddle:
			if !s.pannable {
				return false
			}
			s.panning = true
			s.dragStart = Pointer{X: ev.X, Y: ev.Y}
		}
	case EventMouseUp:
		switch ev.Button {
		case ButtonLeft:
			s.painting = false
		case ButtonMiddle:
			s.panning = false
		}
	}
	return false
}

// drag applies the level-triggered drag actions for the current pointer.
func (s *State) drag(p Pointer) {
	if s.painting && !s.running {
		s.world.Set(s.viewport.ScreenToWorld(p.X, p.Y), s.paint)
	}
	if s.panning {
		s.viewport.Pan(p.X-s.dragStart.X, p.Y-s.dragStart.Y)
		s.dragStart = p
	}
}
