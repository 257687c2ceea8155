package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// SpeakerBufferDuration is the speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Race Cues
const (
	CrashSoundDuration = 250 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 200 * time.Millisecond

	CountdownSoundDuration = 120 * time.Millisecond
	CountdownSoundFreq     = 440.0 // A4

	GoSoundDuration = 400 * time.Millisecond
	GoSoundFreq     = 880.0 // A5

	BeepSoundAttack  = 5 * time.Millisecond
	BeepSoundRelease = 40 * time.Millisecond

	// FinishNoteDuration is the length of each arpeggio note
	FinishNoteDuration = 120 * time.Millisecond
)

// FinishArpeggio is the C major arpeggio played at the finish line
var FinishArpeggio = []float64{523.25, 659.25, 783.99, 1046.50}
