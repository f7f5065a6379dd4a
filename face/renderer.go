package face

// Mouth opening in px per level, 1 to 5.
var mouthHeights = [...]float64{2, 10, 25, 40, 55}

// Lid offset in percent of the eye height per level:
// normal, squint, closed, wide open.
var lidOffsets = [...]float64{-100, -55, 0, -125}

// MouthHeight looks up the mouth opening for a level.
func MouthHeight(level int) (float64, bool) {
	if level < 1 || level > len(mouthHeights) {
		return 0, false
	}
	return mouthHeights[level-1], true
}

// LidOffset looks up the lid offset for a level.
func LidOffset(level int) (float64, bool) {
	if level < 1 || level > len(lidOffsets) {
		return 0, false
	}
	return lidOffsets[level-1], true
}

// A Renderer applies frames to a View and records them in a Journal.
type Renderer struct {
	view    *View
	journal *Journal
}

// NewRenderer creates an instance of a Renderer.
func NewRenderer(view *View, journal *Journal) *Renderer {
	r := new(Renderer)
	r.view = view
	r.journal = journal
	return r
}

// Render draws f. A mouth or lid level with no table entry leaves that part
// of the face as it was.
func (r *Renderer) Render(f Frame) State {
	s := r.view.Update(func(s *State) {
		if h, ok := MouthHeight(f.Mouth); ok {
			s.MouthHeight = h
		}
		s.MouthRounded = f.Mouth != 1
		s.Mouth = f.Mouth

		p := GazePoint(f.Eye)
		s.PupilLeft = p
		s.PupilRight = p
		s.Eye = f.Eye

		if o, ok := LidOffset(f.Lid); ok {
			s.LidLeft = o
			s.LidRight = o
		}
		s.Lid = f.Lid
	})

	r.journal.Appendf("frame: mouth=%d eye=%d lid=%d", f.Mouth, f.Eye, f.Lid)
	return s
}
