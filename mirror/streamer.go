package mirror

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/robotface/face"
	"github.com/matt-g-everett/robotface/util"
)

// Player starts playbacks on the face.
type Player interface {
	PlayDemo(ctx context.Context) face.Playback
	PlayPrediction(ctx context.Context) (face.Playback, error)
	Play(ctx context.Context, seq face.Sequence) face.Playback
}

// Streamer publishes the face state over MQTT for remote displays, easing
// between successive states, and accepts play triggers.
type Streamer struct {
	client       mqtt.Client
	stateTopic   string
	triggerTopic string
	player       Player
	interval     time.Duration

	mu    sync.Mutex
	lut   []float64
	step  int
	from  face.State
	to    face.State
	shown face.State
}

// NewStreamer creates an instance of a Streamer following view.
func NewStreamer(client mqtt.Client, config face.Config, view *face.View, player Player) *Streamer {
	s := new(Streamer)
	s.client = client
	s.stateTopic = config.Mqtt.Topics.State
	s.triggerTopic = config.Mqtt.Topics.Trigger
	s.player = player
	s.interval = time.Duration(float64(time.Second) / config.Mqtt.FrameRate)
	s.lut = util.TransitionLut(util.Steps(config.Mqtt.TransitionMs, config.Mqtt.FrameRate))

	initial := view.Snapshot()
	s.from, s.to, s.shown = initial, initial, initial
	s.step = len(s.lut)
	view.Subscribe(s.setTarget)
	return s
}

func (s *Streamer) setTarget(state face.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.from = s.shown
	s.to = state
	s.step = 0
}

// nextState advances the current transition. It reports false once the
// target has been reached and published.
func (s *Streamer) nextState() (face.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step >= len(s.lut) {
		return s.shown, false
	}
	s.shown = s.from.Interpolate(s.to, s.lut[s.step])
	s.step++
	return s.shown, true
}

// SendFrame publishes the next eased state, if a transition is running.
func (s *Streamer) SendFrame() error {
	state, ok := s.nextState()
	if !ok {
		return nil
	}
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	// retained so a display that connects late still gets the last face
	token := s.client.Publish(s.stateTopic, 0, true, b)
	token.Wait()
	return token.Error()
}

// Run publishes frames until ctx is done.
func (s *Streamer) Run(ctx context.Context) {
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-publishTimer.C:
			if err := s.SendFrame(); err != nil {
				log.Printf("mirror: publish: %v", err)
			}
		}
	}
}

// Subscribe listens for play triggers. Playbacks it starts live as long as ctx.
func (s *Streamer) Subscribe(ctx context.Context) error {
	handler := func(client mqtt.Client, msg mqtt.Message) {
		s.handleTrigger(ctx, msg.Payload())
	}
	token := s.client.Subscribe(s.triggerTopic, 0, handler)
	token.Wait()
	return token.Error()
}

func (s *Streamer) handleTrigger(ctx context.Context, payload []byte) {
	cmd := strings.TrimSpace(string(payload))
	log.Printf("mirror: trigger on %s: %.40q", s.triggerTopic, cmd)

	switch {
	case cmd == "demo":
		s.player.PlayDemo(ctx)
	case cmd == "prediction":
		if _, err := s.player.PlayPrediction(ctx); err != nil {
			log.Printf("mirror: prediction: %v", err)
		}
	case strings.HasPrefix(cmd, "["):
		seq, err := face.ParseSequence([]byte(cmd))
		if err != nil {
			log.Printf("mirror: %v", err)
			return
		}
		s.player.Play(ctx, seq)
	default:
		log.Printf("mirror: unknown trigger %.40q", cmd)
	}
}
