package mandelbrot

import "fmt"

// EscapeRadius is the modulus past which z is guaranteed to diverge under z^2 + c.
const EscapeRadius = 2.0

type Coordinate struct {
	Real float64
	Imag float64
}

func NewCoordinate(z complex128) Coordinate {
	return Coordinate{Real: real(z), Imag: imag(z)}
}

func (c Coordinate) Complex() complex128 {
	return complex(c.Real, c.Imag)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g, %gi)", c.Real, c.Imag)
}

// EscapeTime iterates z = z^2 + c from z = 0 and returns how many applications
// happened while |z| stayed within EscapeRadius. The bound is checked before
// each application. A result equal to budget means the point did not diverge.
func EscapeTime(c Coordinate, budget uint) uint {
	x, y := 0.0, 0.0
	var iteration uint
	for iteration = 0; iteration < budget; iteration++ {
		// compare squared modulus to avoid the sqrt
		if x*x+y*y > EscapeRadius*EscapeRadius {
			return iteration
		}
		x, y = x*x-y*y+c.Real, 2*x*y+c.Imag
	}
	return budget
}
