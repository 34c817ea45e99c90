package biquad

import (
	"math/cmplx"
	"slices"
)

// Poles returns the z-plane poles of the section. Poles at the origin are
// omitted, so a first-order section has a single pole at -A1.
func (c *Coefficients) Poles() []complex128 {
	if c.A2 == 0 {
		return []complex128{complex(-c.A1, 0)}
	}
	return roots(1, c.A1, c.A2)
}

// Zeros returns the z-plane zeros of the section, omitting zeros at the
// origin. A numerator with a single nonzero coefficient has none.
func (c *Coefficients) Zeros() []complex128 {
	switch {
	case c.B2 != 0 && c.B0 != 0:
		return roots(c.B0, c.B1, c.B2)
	case c.B2 != 0:
		if c.B1 == 0 {
			return nil
		}
		return []complex128{complex(-c.B2/c.B1, 0)}
	case c.B0 != 0 && c.B1 != 0:
		return []complex128{complex(-c.B1/c.B0, 0)}
	default:
		return nil
	}
}

// MaxPoleRadius returns the largest pole magnitude. The section is stable
// when the result is below 1.
func (c *Coefficients) MaxPoleRadius() float64 {
	r := 0.0
	for _, p := range c.Poles() {
		r = max(r, cmplx.Abs(p))
	}
	return r
}

// Poles returns the poles of every section in cascade order.
func (c *Chain) Poles() []complex128 {
	var out []complex128
	for i := range c.sections {
		out = append(out, c.sections[i].Poles()...)
	}
	return out
}

// Zeros returns the zeros of every section in cascade order.
func (c *Chain) Zeros() []complex128 {
	var out []complex128
	for i := range c.sections {
		out = append(out, c.sections[i].Zeros()...)
	}
	return out
}

// MaxPoleRadius returns the largest pole magnitude over all sections, or 0
// for an empty chain.
func (c *Chain) MaxPoleRadius() float64 {
	r := 0.0
	for i := range c.sections {
		r = max(r, c.sections[i].MaxPoleRadius())
	}
	return r
}

// roots solves a*x^2 + b*x + c = 0 for x = z, a != 0. Roots are sorted by
// descending imaginary part so complex pairs come out as p, conj(p).
func roots(a, b, c float64) []complex128 {
	d := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	out := []complex128{
		(complex(-b, 0) + d) / complex(2*a, 0),
		(complex(-b, 0) - d) / complex(2*a, 0),
	}
	slices.SortFunc(out, func(x, y complex128) int {
		switch {
		case imag(x) > imag(y), imag(x) == imag(y) && real(x) > real(y):
			return -1
		case x == y:
			return 0
		default:
			return 1
		}
	})
	return out
}
