// Package audio synthesizes the game's sound effects at startup. There are
// no audio assets; every effect is generated 16-bit PCM, matching the
// square-wave charm of the rest of the procedural art.
package audio

import "math"

const (
	// Channels and depth follow ebiten's native player format:
	// interleaved stereo, 16-bit little-endian signed.
	bytesPerFrame = 4

	amplitude = 12000
)

// Tone renders a sine tone with a linear decay envelope.
func Tone(sampleRate int, freq, seconds float64) []byte {
	frames := int(float64(sampleRate) * seconds)
	out := make([]byte, frames*bytesPerFrame)
	for i := 0; i < frames; i++ {
		env := 1.0 - float64(i)/float64(frames)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * env
		writeFrame(out, i, int16(v*amplitude))
	}
	return out
}

// Sweep renders a tone whose pitch glides from startFreq to endFreq, square
// waved for bite, with the same linear decay.
func Sweep(sampleRate int, startFreq, endFreq, seconds float64) []byte {
	frames := int(float64(sampleRate) * seconds)
	out := make([]byte, frames*bytesPerFrame)
	phase := 0.0
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames)
		freq := startFreq + (endFreq-startFreq)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)
		env := 1.0 - t
		v := math.Sin(phase)
		if v >= 0 {
			v = 1
		} else {
			v = -1
		}
		writeFrame(out, i, int16(v*env*amplitude*0.6))
	}
	return out
}

// Bark is the stomp sound: two quick downward yelps.
func Bark(sampleRate int) []byte {
	first := Sweep(sampleRate, 520, 340, 0.08)
	gap := make([]byte, int(float64(sampleRate)*0.03)*bytesPerFrame)
	second := Sweep(sampleRate, 620, 380, 0.1)

	out := make([]byte, 0, len(first)+len(gap)+len(second))
	out = append(out, first...)
	out = append(out, gap...)
	out = append(out, second...)
	return out
}

func writeFrame(out []byte, frame int, v int16) {
	off := frame * bytesPerFrame
	lo := byte(v)
	hi := byte(v >> 8)
	out[off] = lo
	out[off+1] = hi
	out[off+2] = lo
	out[off+3] = hi
}
