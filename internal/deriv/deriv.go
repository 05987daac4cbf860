// Package deriv provides finite-difference differentiation over
// discrete (x, y) samples.
package deriv

// Sample is one (x, y) point of a discretely sampled function. The x
// values are assumed monotonically increasing.
type Sample struct {
	X float64
	Y float64
}

// Diff estimates the derivative by first-order forward differences.
// Each output point carries the x of the left sample; pairs with equal
// x are skipped. The result has at most len(values)-1 points.
func Diff(values []Sample) []Sample {
	if len(values) < 2 {
		return nil
	}
	res := make([]Sample, 0, len(values)-1)
	for i := 0; i < len(values)-1; i++ {
		if values[i+1].X == values[i].X {
			continue
		}
		slope := (values[i+1].Y - values[i].Y) / (values[i+1].X - values[i].X)
		res = append(res, Sample{X: values[i].X, Y: slope})
	}
	return res
}

// Diff5 estimates the derivative with the five-point central stencil
//
//	(-y[i+2] + 8*y[i+1] - 8*y[i-1] + y[i-2]) / (12*h)
//
// using the local spacing h = x[i+1]-x[i], assumed locally uniform.
// Only interior indices with two neighbors on each side are
// evaluated; points with zero local spacing are skipped.
func Diff5(values []Sample) []Sample {
	if len(values) < 5 {
		return nil
	}
	res := make([]Sample, 0, len(values)-4)
	for i := 2; i < len(values)-2; i++ {
		h := values[i+1].X - values[i].X
		if h == 0 {
			continue
		}
		slope := (-values[i+2].Y + 8*values[i+1].Y - 8*values[i-1].Y + values[i-2].Y) / (12 * h)
		res = append(res, Sample{X: values[i].X, Y: slope})
	}
	return res
}
