package audio

import "testing"

func sampleAt(pcm []byte, frame int) int16 {
	off := frame * bytesPerFrame
	return int16(pcm[off]) | int16(pcm[off+1])<<8
}

func TestToneLength(t *testing.T) {
	pcm := Tone(44100, 880, 0.1)
	wantFrames := 4410
	if len(pcm) != wantFrames*bytesPerFrame {
		t.Fatalf("got %d bytes, want %d", len(pcm), wantFrames*bytesPerFrame)
	}
}

func TestToneStereoChannelsMatch(t *testing.T) {
	pcm := Tone(44100, 440, 0.05)
	for frame := 0; frame < len(pcm)/bytesPerFrame; frame++ {
		off := frame * bytesPerFrame
		if pcm[off] != pcm[off+2] || pcm[off+1] != pcm[off+3] {
			t.Fatalf("channels diverge at frame %d", frame)
		}
	}
}

func TestToneDecays(t *testing.T) {
	pcm := Tone(44100, 880, 0.2)
	frames := len(pcm) / bytesPerFrame

	peak := func(start, end int) int {
		max := 0
		for f := start; f < end; f++ {
			v := int(sampleAt(pcm, f))
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
		return max
	}

	head := peak(0, frames/4)
	tail := peak(3*frames/4, frames)
	if tail >= head {
		t.Fatalf("envelope does not decay: head peak %d, tail peak %d", head, tail)
	}
}

func TestSweepStaysInRange(t *testing.T) {
	pcm := Sweep(44100, 520, 340, 0.08)
	for frame := 0; frame < len(pcm)/bytesPerFrame; frame++ {
		v := sampleAt(pcm, frame)
		if v > amplitude || v < -amplitude {
			t.Fatalf("sample %d out of range at frame %d", v, frame)
		}
	}
}

func TestBarkHasGap(t *testing.T) {
	pcm := Bark(44100)
	firstFrames := int(44100 * 0.08)
	gapFrames := int(44100 * 0.03)
	for f := firstFrames; f < firstFrames+gapFrames; f++ {
		if sampleAt(pcm, f) != 0 {
			t.Fatalf("gap frame %d not silent", f)
		}
	}
}
