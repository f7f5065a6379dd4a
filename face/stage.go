package face

import (
	"context"
	"log"
)

// Stage wires a face together and exposes the ways of playing it.
type Stage struct {
	View      *View
	Journal   *Journal
	Renderer  *Renderer
	Sequencer *Sequencer
	Loader    *Loader
}

// NewStage builds a Stage from config and shows the rest pose.
func NewStage(config Config, logger *log.Logger) *Stage {
	s := new(Stage)
	s.View = NewView()
	s.Journal = NewJournal(config.Journal.Size, logger)
	s.Renderer = NewRenderer(s.View, s.Journal)
	s.Sequencer = NewSequencer(s.Renderer, s.View, s.Journal)
	s.Loader = NewLoader(config.Prediction.Source, config.PredictionTimeout(), s.Journal)

	s.Renderer.Render(Rest)
	s.Journal.Append("waiting for commands")
	return s
}

// PlayDemo starts the built-in demo sequence.
func (s *Stage) PlayDemo(ctx context.Context) Playback {
	return s.Sequencer.Start(ctx, DemoSequence())
}

// PlayPrediction loads the prediction file and starts it. Nothing is played
// when loading fails.
func (s *Stage) PlayPrediction(ctx context.Context) (Playback, error) {
	seq, err := s.Loader.Load(ctx)
	if err != nil {
		return Playback{}, err
	}
	return s.Sequencer.Start(ctx, seq), nil
}

// Play starts an arbitrary sequence.
func (s *Stage) Play(ctx context.Context, seq Sequence) Playback {
	return s.Sequencer.Start(ctx, seq)
}
