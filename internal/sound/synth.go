package sound

import "math"

// Generate renders kind as interleaved stereo float32 LE frames.
func Generate(kind Kind) []byte {
	switch kind {
	case Eat:
		return genEat()
	case Teleport:
		return genTeleport()
	case Reset:
		return genReset()
	case CameraSwitch:
		return genCameraSwitch()
	case BoardCleared:
		return genBoardCleared()
	}
	return nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// genEat: short rising pop.
func genEat() []byte {
	n := int(0.07 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 520 + 640*p
		s := fm(t, freq, 2.0, 3.0*env) * env * 0.45
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.05
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genTeleport: down-then-up sweep with a wobbling modulator.
func genTeleport() []byte {
	n := int(0.28 * SampleRate)
	buf := makeBuf(n)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.3, 0.6, 0.3)
		freq := 300 + 900*math.Abs(2*p-1)
		phase += 2 * math.Pi * freq / SampleRate
		wobble := math.Sin(2*math.Pi*18*t) * 1.8
		s := math.Sin(phase+wobble*env) * env * 0.4
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genReset: descending minor triad, staggered.
func genReset() []byte {
	dur := 0.5
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.10}, // C4
		{220.00, 0.20}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			s := fm(t, note.freq, 2.0, 2.0*env) * env * 0.3
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genCameraSwitch: crisp click.
func genCameraSwitch() []byte {
	n := SampleRate * 50 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.35
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genBoardCleared: ascending bell staircase, each note ringing over the next.
func genBoardCleared() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5, 1318.51}
	noteStep := int(0.09 * SampleRate)
	total := len(notes)*noteStep + int(0.3*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.26
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.06
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
