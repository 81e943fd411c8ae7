// Package sound plays the short synthesized cues of the puzzle.
package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/hanoi/internal/config"
)

// Cue names a sound effect.
type Cue int

const (
	CueSelect Cue = iota
	CueLand
	CueVictory
)

// Player mixes cues into a single speaker stream. A nil *Player is valid and
// silent, so the game keeps running when no audio device is available.
type Player struct {
	sr     beep.SampleRate
	mixer  *beep.Mixer
	volume *effects.Volume
}

// New initializes the speaker and starts the mixer.
func New() (*Player, error) {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := &Player{
		sr:    sr,
		mixer: &beep.Mixer{},
	}
	p.volume = &effects.Volume{
		Streamer: p.mixer,
		Base:     2,
		Volume:   config.SoundVolume,
	}
	speaker.Play(p.volume)
	return p, nil
}

// Play queues a cue on top of whatever is already sounding.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	s := cueStreamer(p.sr, c)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// ToggleMute flips the muted state and returns it.
func (p *Player) ToggleMute() bool {
	if p == nil {
		return true
	}
	speaker.Lock()
	p.volume.Silent = !p.volume.Silent
	muted := p.volume.Silent
	speaker.Unlock()
	return muted
}

// Close stops playback.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

func cueStreamer(sr beep.SampleRate, c Cue) beep.Streamer {
	n := sr.N(time.Duration(config.ToneDuration * float64(time.Second)))
	switch c {
	case CueSelect:
		return newTone(sr, config.ClickTone, n/2)
	case CueVictory:
		return beep.Seq(
			newTone(sr, config.VictoryTone, n),
			newTone(sr, config.VictoryTone*5/4, n),
			newTone(sr, config.VictoryTone*3/2, 2*n),
		)
	default:
		return newTone(sr, config.LandTone, n)
	}
}
