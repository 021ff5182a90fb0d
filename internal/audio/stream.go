package audio

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/gopxl/beep"
)

// bytesPerFrame is two float32 channels
const bytesPerFrame = 8

// channel is a beep mixer read by the playback goroutine as float32 PCM
type channel struct {
	mu    *sync.Mutex
	mixer *beep.Mixer
	buf   [][2]float64
}

func newChannel(mu *sync.Mutex) *channel {
	return &channel{mu: mu, mixer: &beep.Mixer{}}
}

// Read implements io.Reader with little-endian float32 stereo frames.
// Silence fills whatever the mixer does not produce.
func (c *channel) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(c.buf) < frames {
		c.buf = make([][2]float64, frames)
	}
	buf := c.buf[:frames]

	c.mu.Lock()
	n, _ := c.mixer.Stream(buf)
	c.mu.Unlock()

	for i := n; i < frames; i++ {
		buf[i] = [2]float64{}
	}
	for i, s := range buf {
		off := i * bytesPerFrame
		binary.LittleEndian.PutUint32(p[off:], math.Float32bits(float32(clamp(s[0]))))
		binary.LittleEndian.PutUint32(p[off+4:], math.Float32bits(float32(clamp(s[1]))))
	}
	return frames * bytesPerFrame, nil
}
