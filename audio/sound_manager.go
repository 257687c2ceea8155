package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-racer/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager plays race cues through a single mixer on the speaker
// All Play calls are safe before Initialize, after Cleanup and while muted: they do nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool

	// play hands a cue to the output, replaced in tests
	play func(beep.Streamer)
}

// NewSoundManager creates a manager at the given linear volume (0..1)
func NewSoundManager(volume float64) *SoundManager {
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	sm.play = sm.addToMixer
	return sm
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer; the speaker has no close so clearing is enough
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles all cues
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) PlayCrash()     { sm.Play(SoundCrash) }
func (sm *SoundManager) PlayCountdown() { sm.Play(SoundCountdown) }
func (sm *SoundManager) PlayGo()        { sm.Play(SoundGo) }
func (sm *SoundManager) PlayFinish()    { sm.Play(SoundFinish) }

// Play starts the cue unless muted or not initialized
func (sm *SoundManager) Play(sound SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	if s := GetSoundEffect(sound, sampleRate, sm.volume); s != nil {
		sm.play(s)
	}
}

func (sm *SoundManager) addToMixer(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
