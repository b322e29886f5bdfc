package fingerprint

import (
	"fmt"
	"math"

	"github.com/mcp-tool-shop-org/websketch-ir/ir"
)

// Quantize rounds each component of b to the nearest multiple of step,
// using half-away-from-zero rounding, to suppress subpixel jitter before
// hashing or ordering. A step of zero disables quantization.
func Quantize(b ir.BBox01, step float64) ir.BBox01 {
	if step == 0 {
		return b
	}
	return ir.BBox01{
		X: roundToStep(b.X, step),
		Y: roundToStep(b.Y, step),
		W: roundToStep(b.W, step),
		H: roundToStep(b.H, step),
	}
}

func roundToStep(v, step float64) float64 {
	q := v / step
	if q >= 0 {
		q = math.Floor(q + 0.5)
	} else {
		q = math.Ceil(q - 0.5)
	}
	return q * step
}

// StringOf formats b as "x,y,w,h" with a fixed number of fractional
// digits. This is the exact representation that enters the shallow node
// hash, so its formatting must never drift once captures depend on it.
func StringOf(b ir.BBox01, precision int) string {
	f := fmt.Sprintf("%%.%df,%%.%df,%%.%df,%%.%df", precision, precision, precision, precision)
	return fmt.Sprintf(f, b.X, b.Y, b.W, b.H)
}

// BBoxSimilarity returns the intersection-over-union of two rectangles in
// [0, 1]. A zero-union pair (two zero-area boxes, or non-overlapping
// zero-area boxes) scores 0.
func BBoxSimilarity(a, b ir.BBox01) float64 {
	ix := math.Max(0, math.Min(a.X+a.W, b.X+b.W)-math.Max(a.X, b.X))
	iy := math.Max(0, math.Min(a.Y+a.H, b.Y+b.H)-math.Max(a.Y, b.Y))
	intersection := ix * iy

	union := a.W*a.H + b.W*b.H - intersection
	if union <= 0 {
		return 0
	}
	return intersection / union
}
