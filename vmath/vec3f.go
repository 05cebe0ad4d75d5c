package vmath

import (
	"math"
)

// Vec3F is a float64 3D world-space vector
// X/Y span the ground plane, Z is height
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FDistance returns euclidean distance between two points
func V3FDistance(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FMoveTowards advances from toward to by at most maxDelta, never overshooting
func V3FMoveTowards(from, to Vec3F, maxDelta float64) Vec3F {
	delta := V3FSub(to, from)
	dist := V3FMag(delta)
	if dist <= maxDelta || dist == 0 {
		return to
	}
	return V3FAdd(from, V3FScale(delta, maxDelta/dist))
}

// V3FClampToSphere projects p onto the sphere of radius r around center when outside it
// Returns the input unchanged when within radius; second value reports whether clamping occurred
func V3FClampToSphere(p, center Vec3F, r float64) (Vec3F, bool) {
	offset := V3FSub(p, center)
	if V3FMag(offset) <= r {
		return p, false
	}
	return V3FAdd(center, V3FScale(V3FNormalize(offset), r)), true
}

// V3FMean returns the arithmetic mean of points, false for an empty set
func V3FMean(points []Vec3F) (Vec3F, bool) {
	if len(points) == 0 {
		return Vec3F{}, false
	}
	var sum Vec3F
	for _, p := range points {
		sum = V3FAdd(sum, p)
	}
	n := float64(len(points))
	return Vec3F{X: sum.X / n, Y: sum.Y / n, Z: sum.Z / n}, true
}

// V3FApproxEqual compares componentwise within eps
func V3FApproxEqual(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}
