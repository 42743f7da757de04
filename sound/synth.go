package sound

import "math"

// Note frequencies in Hz.
const (
	Rest = 0.0
	F3   = 174.61
	G3   = 196.00
	A3   = 220.00
	B3   = 246.94
	C4   = 261.63
	D4   = 293.66
	E4   = 329.63
	G4   = 392.00
	C5   = 523.25
	E5   = 659.25
	G5   = 783.99
	A5   = 880.00
	B5   = 987.77
	C6   = 1046.50
	E6   = 1318.51
	G6   = 1567.98
	A6   = 1760.00
)

// Note is one square-wave tone.
type Note struct {
	Freq     float64 // Hz, Rest for silence
	Duration float64 // seconds
}

// Melody is a sequence of notes played back to back.
type Melody []Note

// Duration returns the total length in seconds.
func (m Melody) Duration() float64 {
	var d float64
	for _, n := range m {
		d += n.Duration
	}
	return d
}

const synthAmplitude = 0.25

// Render synthesizes the melody as 16-bit little-endian stereo PCM, the
// format ebiten's audio players consume.
func (m Melody) Render(sampleRate int) []byte {
	total := 0
	for _, n := range m {
		total += noteSamples(n, sampleRate)
	}

	buf := make([]byte, 0, total*4)
	for _, n := range m {
		count := noteSamples(n, sampleRate)
		for i := 0; i < count; i++ {
			v := squareSample(n.Freq, i, sampleRate) * envelope(i, count) * synthAmplitude
			s := int16(v * math.MaxInt16)
			lo, hi := byte(s), byte(uint16(s)>>8)
			buf = append(buf, lo, hi, lo, hi)
		}
	}
	return buf
}

func noteSamples(n Note, sampleRate int) int {
	if n.Duration <= 0 {
		return 0
	}
	return int(n.Duration * float64(sampleRate))
}

func squareSample(freq float64, i, sampleRate int) float64 {
	if freq <= 0 {
		return 0
	}
	phase := math.Mod(float64(i)*freq/float64(sampleRate), 1)
	if phase < 0.5 {
		return 1
	}
	return -1
}

// envelope ramps the first and last few milliseconds to avoid clicks.
func envelope(i, count int) float64 {
	ramp := count / 20
	if ramp == 0 {
		return 1
	}
	switch {
	case i < ramp:
		return float64(i) / float64(ramp)
	case i >= count-ramp:
		return float64(count-1-i) / float64(ramp)
	}
	return 1
}
