// This file is part of mk2panel.
//
// mk2panel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mk2panel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mk2panel.  If not, see <https://www.gnu.org/licenses/>.

package limiter

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/mk2panel/curated"
)

// FPSLimiter provides a ticker at a requested rate.
type FPSLimiter struct {
	// duration of a single frame in nanoseconds
	period atomic.Int64

	tick chan bool
}

// InvalidRate is the error pattern for a rate that is zero or negative.
const InvalidRate = "limiter: invalid rate (%d)"

// NewFPSLimiter is the preferred method of initialisation for the FPSLimiter
// type. The limiter stops when the context is done, after which Wait() no
// longer blocks.
func NewFPSLimiter(ctx context.Context, framesPerSecond int) (*FPSLimiter, error) {
	lim := &FPSLimiter{
		tick: make(chan bool),
	}

	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}

	go func() {
		defer close(lim.tick)

		adjusted := time.Duration(lim.period.Load())
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-ctx.Done():
				return
			}

			time.Sleep(adjusted)

			nt := time.Now()
			period := time.Duration(lim.period.Load())
			adjusted -= nt.Sub(t) - period

			// limit the correction. a long pause (caused by the tick not being
			// collected) should not result in a burst of ticks
			adjusted = max(adjusted, 0)
			adjusted = min(adjusted, period)

			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the rate of the limiter.
func (lim *FPSLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf(InvalidRate, framesPerSecond)
	}
	lim.period.Store(int64(time.Second) / int64(framesPerSecond))
	return nil
}

// Period returns the duration of a single frame at the current rate.
func (lim *FPSLimiter) Period() time.Duration {
	return time.Duration(lim.period.Load())
}

// Wait blocks until the next tick.
func (lim *FPSLimiter) Wait() {
	<-lim.tick
}

// CalcFPS returns the number of frames per second for the number of frames
// rendered in the duration. The accuracy is the percentage of the target
// rate.
func CalcFPS(numFrames int, duration time.Duration, target int) (fps float64, accuracy float64) {
	if duration <= 0 || target <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration.Seconds()
	accuracy = 100 * fps / float64(target)
	return fps, accuracy
}
