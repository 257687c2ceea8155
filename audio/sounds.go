package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-racer/constants"
)

// SoundType identifies a race cue
type SoundType int

const (
	SoundCrash SoundType = iota
	SoundCountdown
	SoundGo
	SoundFinish
)

func (s SoundType) String() string {
	switch s {
	case SoundCrash:
		return "Crash"
	case SoundCountdown:
		return "Countdown"
	case SoundGo:
		return "Go"
	case SoundFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// CreateCrashSound is a short noise burst layered over a low saw thud
func CreateCrashSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewOscillator(0, constants.CrashSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.CrashSoundDuration, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)

	thud := NewOscillator(70, constants.CrashSoundDuration, WaveSaw, rate)
	thudShaped := NewEnvelope(thud, constants.CrashSoundDuration, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)

	mixed := beep.Mix(newVolume(noiseShaped, 0.6), newVolume(thudShaped, 0.4))
	return newVolume(mixed, vol)
}

// CreateBeepSound is a single square-wave tone used for the countdown lights
func CreateBeepSound(rate beep.SampleRate, vol, freq float64, d time.Duration) beep.Streamer {
	osc := NewOscillator(freq, d, WaveSquare, rate)
	shaped := NewEnvelope(osc, d, constants.BeepSoundAttack, constants.BeepSoundRelease, rate)
	return newVolume(shaped, vol*0.5)
}

// CreateFinishSound plays the finish arpeggio
func CreateFinishSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(constants.FinishArpeggio))
	for _, freq := range constants.FinishArpeggio {
		osc := NewOscillator(freq, constants.FinishNoteDuration, WaveSine, rate)
		notes = append(notes, NewEnvelope(osc, constants.FinishNoteDuration, constants.BeepSoundAttack, constants.BeepSoundRelease, rate))
	}
	return newVolume(beep.Seq(notes...), vol)
}

// GetSoundEffect returns a fresh streamer for the cue at the given volume, nil for unknown cues
func GetSoundEffect(sound SoundType, rate beep.SampleRate, vol float64) beep.Streamer {
	switch sound {
	case SoundCrash:
		return CreateCrashSound(rate, vol)
	case SoundCountdown:
		return CreateBeepSound(rate, vol, constants.CountdownSoundFreq, constants.CountdownSoundDuration)
	case SoundGo:
		return CreateBeepSound(rate, vol, constants.GoSoundFreq, constants.GoSoundDuration)
	case SoundFinish:
		return CreateFinishSound(rate, vol)
	default:
		return nil
	}
}
