// Package sound turns game events into short synthesized cues. Tones are
// rendered as signed 16-bit little-endian stereo PCM, which both the oto
// and ebiten audio players accept directly.
package sound

import (
	"math"
	"time"
)

// DefaultSampleRate is used when a frontend has no preference.
const DefaultSampleRate = 44100

const (
	bytesPerFrame = 4
	toneGap       = 10 * time.Millisecond
	fadeDuration  = 3 * time.Millisecond
)

// Tone is a single sine note.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Volume    float64
}

func frames(d time.Duration, sampleRate int) int {
	return int(float64(sampleRate) * d.Seconds())
}

// Render synthesizes a sequence of tones separated by short gaps of silence.
func Render(sequence []Tone, sampleRate int, masterVolume float64) []byte {
	gapFrames := frames(toneGap, sampleRate)
	total := 0
	for i, tone := range sequence {
		total += frames(tone.Duration, sampleRate)
		if i < len(sequence)-1 {
			total += gapFrames
		}
	}

	buffer := make([]byte, total*bytesPerFrame)
	index := 0
	master := ClampVolume(masterVolume)
	for i, tone := range sequence {
		renderTone(buffer[index:], tone, sampleRate, tone.Volume*master)
		index += frames(tone.Duration, sampleRate) * bytesPerFrame
		if i < len(sequence)-1 {
			index += gapFrames * bytesPerFrame
		}
	}
	return buffer
}

func renderTone(buffer []byte, tone Tone, sampleRate int, volume float64) {
	const maxInt16 = 1<<15 - 1
	n := frames(tone.Duration, sampleRate)
	fade := frames(fadeDuration, sampleRate)
	for i := 0; i < n; i++ {
		env := 1.0
		if fade > 0 {
			if i < fade {
				env = float64(i) / float64(fade)
			} else if i > n-fade {
				env = float64(n-i) / float64(fade)
			}
		}
		sample := math.Sin(2 * math.Pi * tone.Frequency * float64(i) / float64(sampleRate))
		value := int16(sample * volume * env * maxInt16)
		buffer[i*4] = byte(value)
		buffer[i*4+1] = byte(value >> 8)
		buffer[i*4+2] = byte(value)
		buffer[i*4+3] = byte(value >> 8)
	}
}

// ClampVolume limits v to [0, 1].
func ClampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
