// Package sound plays procedural effects for game events through oto.
package sound

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
	log "github.com/sirupsen/logrus"

	"pac3d/internal/game"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	maxVoices = 4
)

// Kind identifies a sound effect.
type Kind int

const (
	Eat Kind = iota
	Teleport
	Reset
	CameraSwitch
	BoardCleared
)

func (k Kind) String() string {
	switch k {
	case Eat:
		return "eat"
	case Teleport:
		return "teleport"
	case Reset:
		return "reset"
	case CameraSwitch:
		return "camera"
	case BoardCleared:
		return "cleared"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// System owns the audio context. Effects are synthesised once and replayed.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	muted  atomic.Bool
	voices int32
	cache  map[Kind][]byte
}

// Init opens the default audio device.
func Init(volume float64) (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	s := &System{
		ctx:    ctx,
		ready:  ready,
		volume: clampF(volume, 0, 1),
		cache:  make(map[Kind][]byte),
	}
	for _, k := range []Kind{Eat, Teleport, Reset, CameraSwitch, BoardCleared} {
		s.cache[k] = Generate(k)
	}
	return s, nil
}

func (s *System) SetMuted(m bool) { s.muted.Store(m) }
func (s *System) Muted() bool     { return s.muted.Load() }

// Play starts kind on its own player and returns immediately. Calls made
// before the device is ready, while muted or with too many voices sounding
// are dropped.
func (s *System) Play(kind Kind) {
	if s == nil || s.muted.Load() {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	samples := s.cache[kind]
	if len(samples) == 0 {
		return
	}
	if atomic.AddInt32(&s.voices, 1) > maxVoices {
		atomic.AddInt32(&s.voices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&s.voices, -1)
		player := s.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.WithError(err).WithField("sound", kind).Debug("close player")
		}
	}()
}

// Attach plays an effect for each game event that has one.
func (s *System) Attach(bus *game.EventBus) {
	bind := func(t game.EventType, k Kind) {
		bus.Subscribe(t, func(game.Event) { s.Play(k) })
	}
	bind(game.EventFoodEaten, Eat)
	bind(game.EventTeleported, Teleport)
	bind(game.EventReset, Reset)
	bind(game.EventCameraChanged, CameraSwitch)
	bind(game.EventBoardCleared, BoardCleared)
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
