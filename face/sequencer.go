package face

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Delay blocks for d, or until ctx is done.
func Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Playback is a handle on a running sequence.
type Playback struct {
	ID   string
	Done <-chan error
}

// Wait blocks until the playback ends and returns its error.
func (p Playback) Wait() error {
	return <-p.Done
}

// Sequencer plays sequences through a Renderer, holding each frame for its
// duration. Playbacks are not serialised: two at once interleave on the View.
type Sequencer struct {
	renderer *Renderer
	view     *View
	journal  *Journal
	sleep    func(context.Context, time.Duration) error
}

// NewSequencer creates an instance of a Sequencer.
func NewSequencer(renderer *Renderer, view *View, journal *Journal) *Sequencer {
	s := new(Sequencer)
	s.renderer = renderer
	s.view = view
	s.journal = journal
	s.sleep = Delay
	return s
}

// Start plays seq on its own goroutine. The status reads playing by the
// time Start returns.
func (s *Sequencer) Start(ctx context.Context, seq Sequence) Playback {
	id := uuid.NewString()
	s.begin(id, seq)
	done := make(chan error, 1)
	go func() {
		done <- s.run(ctx, id, seq)
	}()
	return Playback{ID: id, Done: done}
}

// Play plays seq and returns once the last frame's hold has elapsed.
func (s *Sequencer) Play(ctx context.Context, seq Sequence) error {
	id := uuid.NewString()
	s.begin(id, seq)
	return s.run(ctx, id, seq)
}

func (s *Sequencer) begin(id string, seq Sequence) {
	s.view.SetStatus(StatusPlaying, id)
	s.journal.Appendf("playback %s started, %d frames", short(id), len(seq))
}

func (s *Sequencer) run(ctx context.Context, id string, seq Sequence) error {
	for i, f := range seq {
		s.renderer.Render(f)
		if err := s.sleep(ctx, f.Hold()); err != nil {
			s.view.SetStatus(StatusStopped, id)
			s.journal.Appendf("playback %s stopped after frame %d: %v", short(id), i+1, err)
			return err
		}
	}

	s.view.SetStatus(StatusFinished, id)
	s.journal.Append("sequence playback complete")
	return nil
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
