package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a world-space position or velocity. Forward travel is along -Z.
type Vec3 = mgl64.Vec3

// Rand is the random source the spawner draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Clamp restricts v to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Direction returns the unit vector from a to b, or straight ahead when the
// points coincide.
func Direction(from, to Vec3) Vec3 {
	d := to.Sub(from)
	l := d.Len()
	if l <= 0.001 {
		return Vec3{0, 0, -1}
	}
	return d.Mul(1 / l)
}

// Distance returns the distance between two points
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// randRange returns a uniform value in [lo, hi]
func randRange(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// randInt returns a uniform integer in [lo, hi]
func randInt(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
