// Package pace paces a render loop to a frame rate and measures the rate
// actually achieved.
package pace

import (
	"fmt"
	"time"
)

// Window is the period the measured frame rate is averaged over.
const Window = time.Second

// Pacer is called once per frame. It is not safe for concurrent use.
type Pacer struct {
	interval time.Duration
	now      func() time.Time
	sleep    func(time.Duration)

	next    time.Time
	frames  int
	window  time.Time
	counted int
	fps     float64
}

// New returns a pacer targeting fps frames per second. With fps at or below
// zero frames are not delayed, only measured.
func New(fps float64) *Pacer {
	return newPacer(fps, time.Now, time.Sleep)
}

func newPacer(fps float64, now func() time.Time, sleep func(time.Duration)) *Pacer {
	p := &Pacer{
		now:   now,
		sleep: sleep,
	}
	if fps > 0 {
		p.interval = time.Duration(float64(time.Second) / fps)
	}
	return p
}

func (p *Pacer) String() string {
	if p.interval == 0 {
		return fmt.Sprintf("unpaced, %.1f fps", p.fps)
	}
	return fmt.Sprintf("%.1f/%.1f fps", p.fps, float64(time.Second)/float64(p.interval))
}

// Frame marks the end of a frame and waits for the start of the next one. A
// loop that fell behind by more than a frame starts over from now instead of
// catching up. Frame reports whether a new rate was measured.
func (p *Pacer) Frame() bool {
	now := p.now()
	var measured bool
	if p.frames == 0 {
		p.next, p.window = now, now
	} else {
		p.counted++
		if elapsed := now.Sub(p.window); elapsed >= Window {
			p.fps = float64(p.counted) / elapsed.Seconds()
			p.window, p.counted = now, 0
			measured = true
		}
	}
	p.frames++

	if p.interval == 0 {
		return measured
	}
	p.next = p.next.Add(p.interval)
	if wait := p.next.Sub(now); wait > 0 {
		p.sleep(wait)
	} else if -wait > p.interval {
		p.next = now
	}
	return measured
}

// Frames is the number of frames seen.
func (p *Pacer) Frames() int {
	return p.frames
}

// FPS is the last measured frame rate.
func (p *Pacer) FPS() float64 {
	return p.fps
}
