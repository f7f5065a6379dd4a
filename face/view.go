package face

import (
	"sync"
)

// Playback status strings shown on the status line.
const (
	StatusIdle     = "idle"
	StatusPlaying  = "playing"
	StatusFinished = "finished"
	StatusStopped  = "stopped"
)

// State is everything drawn on the face at one instant.
type State struct {
	MouthHeight  float64 `json:"mouthHeight"`
	MouthRounded bool    `json:"mouthRounded"`
	PupilLeft    Point   `json:"pupilLeft"`
	PupilRight   Point   `json:"pupilRight"`
	LidLeft      float64 `json:"lidLeft"`
	LidRight     float64 `json:"lidRight"`

	// Readouts of the last values applied, whether or not they were in range.
	Mouth int `json:"mouth"`
	Eye   int `json:"eye"`
	Lid   int `json:"lid"`

	Status   string `json:"status"`
	Playback string `json:"playback,omitempty"`
}

// Interpolate blends the continuous parts of two states. Discrete parts are
// taken from next.
func (s State) Interpolate(next State, t float64) State {
	out := next
	out.MouthHeight = lerp(s.MouthHeight, next.MouthHeight, t)
	out.PupilLeft = lerpPoint(s.PupilLeft, next.PupilLeft, t)
	out.PupilRight = lerpPoint(s.PupilRight, next.PupilRight, t)
	out.LidLeft = lerp(s.LidLeft, next.LidLeft, t)
	out.LidRight = lerp(s.LidRight, next.LidRight, t)
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpPoint(a, b Point, t float64) Point {
	return Point{X: lerp(a.X, b.X, t), Y: lerp(a.Y, b.Y, t)}
}

// View is the single shared face surface. Every renderer and playback writes
// to the same View; the last write wins. Listeners see updates in write order.
type View struct {
	notifyMu  sync.Mutex
	mu        sync.RWMutex
	state     State
	listeners map[int]func(State)
	nextID    int
}

// NewView creates an idle View.
func NewView() *View {
	v := new(View)
	v.state.Status = StatusIdle
	v.listeners = make(map[int]func(State))
	return v
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Update applies fn to the state and notifies listeners with the result.
// Listeners must not update the View themselves.
func (v *View) Update(fn func(s *State)) State {
	v.notifyMu.Lock()
	defer v.notifyMu.Unlock()

	v.mu.Lock()
	fn(&v.state)
	s := v.state
	listeners := make([]func(State), 0, len(v.listeners))
	for _, l := range v.listeners {
		listeners = append(listeners, l)
	}
	v.mu.Unlock()

	for _, l := range listeners {
		l(s)
	}
	return s
}

// SetStatus updates the status line and the playback it belongs to.
func (v *View) SetStatus(status string, playback string) {
	v.Update(func(s *State) {
		s.Status = status
		s.Playback = playback
	})
}

// Subscribe registers fn to be called after every update. The returned func
// removes it.
func (v *View) Subscribe(fn func(State)) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.listeners, id)
		v.mu.Unlock()
	}
}
