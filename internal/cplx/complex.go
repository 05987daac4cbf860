package cplx

import (
	"errors"
	"fmt"
	"math"
)

// ErrDivideByZero indicates a division by a value of zero magnitude.
var ErrDivideByZero = errors.New("cplx: divide by zero")

// Complex is an immutable complex scalar. All operations return new
// values; a Complex has no identity beyond its two components.
type Complex struct {
	Re float64
	Im float64
}

func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// FromReal embeds a real number in the complex plane.
func FromReal(x float64) Complex {
	return Complex{Re: x}
}

func (z Complex) Add(w Complex) Complex {
	return Complex{z.Re + w.Re, z.Im + w.Im}
}

func (z Complex) AddReal(x float64) Complex {
	return Complex{z.Re + x, z.Im}
}

func (z Complex) Sub(w Complex) Complex {
	return Complex{z.Re - w.Re, z.Im - w.Im}
}

func (z Complex) SubReal(x float64) Complex {
	return Complex{z.Re - x, z.Im}
}

func (z Complex) Mul(w Complex) Complex {
	return Complex{w.Re*z.Re - w.Im*z.Im, w.Re*z.Im + w.Im*z.Re}
}

func (z Complex) MulReal(x float64) Complex {
	return Complex{x * z.Re, x * z.Im}
}

// Neg returns -z, defined as 0 - z.
func (z Complex) Neg() Complex {
	return Complex{}.Sub(z)
}

// Div returns z/w. It fails with ErrDivideByZero when |w| is exactly zero.
func (z Complex) Div(w Complex) (Complex, error) {
	if w.Abs() == 0 {
		return Complex{}, ErrDivideByZero
	}
	d := w.Re*w.Re + w.Im*w.Im
	return Complex{
		(z.Re*w.Re + z.Im*w.Im) / d,
		(z.Im*w.Re - z.Re*w.Im) / d,
	}, nil
}

// DivReal returns z/x. It fails with ErrDivideByZero when x is exactly zero.
func (z Complex) DivReal(x float64) (Complex, error) {
	if x == 0 {
		return Complex{}, ErrDivideByZero
	}
	return Complex{z.Re / x, z.Im / x}, nil
}

// Abs returns the magnitude sqrt(re^2 + im^2).
func (z Complex) Abs() float64 {
	return math.Sqrt(z.Re*z.Re + z.Im*z.Im)
}

// Phase returns the polar angle atan2(im, re) in radians.
func (z Complex) Phase() float64 {
	return math.Atan2(z.Im, z.Re)
}

// Polar returns z in polar notation as (magnitude, phase).
func (z Complex) Polar() (r, phi float64) {
	return z.Abs(), z.Phase()
}

// Rotate returns z rotated anticlockwise by angle radians, treating
// (re, im) as a plane vector.
func (z Complex) Rotate(angle float64) Complex {
	sin, cos := math.Sincos(angle)
	return Complex{cos*z.Re - sin*z.Im, sin*z.Re + cos*z.Im}
}

// Exp returns the complex exponential e^re * (cos im, sin im).
func Exp(z Complex) Complex {
	return Complex{math.Cos(z.Im), math.Sin(z.Im)}.MulReal(math.Exp(z.Re))
}

// ExpReal returns the exponential of a real argument as (e^x, 0).
func ExpReal(x float64) Complex {
	return Complex{Re: math.Exp(x)}
}

func (z Complex) String() string {
	return fmt.Sprintf("%g + %gi", z.Re, z.Im)
}
